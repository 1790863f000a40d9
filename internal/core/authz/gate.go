package authz

import (
	"context"

	"github.com/taskdeck/project-system/internal/core/domain"
)

// MembershipStore answers "is this user a member of this workspace" —
// membership relation or workspace ownership. A nonexistent workspace is
// vacuously false, never an error; errors are reserved for backend
// failures, which the gate treats as a deny.
type MembershipStore interface {
	IsMember(ctx context.Context, userID, workspaceID string) (bool, error)
}

// Gate is the request-level area & scope check that runs before any policy
// evaluation. Area is a partition, not an additive privilege: an admin
// principal is never admitted to app routes and vice versa, regardless of
// what else it could do.
type Gate struct {
	members MembershipStore
}

// NewGate builds a Gate over the given membership store.
func NewGate(members MembershipStore) *Gate {
	return &Gate{members: members}
}

// AuthorizeArea evaluates the gate steps in strict order, short-circuiting
// on the first deny:
//
//  1. principal resolved           → else UNAUTHENTICATED
//  2. role matches requested area  → else wrong_area
//  3. workspace id present (app)   → else missing_workspace (bad request,
//     not forbidden — the request is malformed, not denied)
//  4. workspace membership (app)   → else not_a_member
//
// Admin-area requests are not workspace-scoped; steps 3 and 4 apply only
// to the app area. Only after AuthorizeArea allows may a caller invoke
// Authorize for the specific action.
func (g *Gate) AuthorizeArea(ctx context.Context, p *domain.Principal, area Area, workspaceID string) Decision {
	if p == nil {
		return deny(ReasonUnauthenticated)
	}

	switch area {
	case AreaAdmin:
		if !p.Role.IsAdminArea() {
			return deny(ReasonWrongArea)
		}
		return allow()
	case AreaApp:
		if !p.Role.IsAppArea() {
			return deny(ReasonWrongArea)
		}
	default:
		return deny(ReasonWrongArea)
	}

	if workspaceID == "" {
		return deny(ReasonMissingWorkspace)
	}

	ok, err := g.members.IsMember(ctx, p.ID, workspaceID)
	if err != nil || !ok {
		// Backend failure fails closed: no provable membership, no access.
		return deny(ReasonNotAMember)
	}
	return allow()
}
