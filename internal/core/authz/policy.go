package authz

import "github.com/taskdeck/project-system/internal/core/domain"

// Authorize evaluates whether the principal may perform action on the given
// resource. Precedence is strict and first-match-wins:
//
//  1. ADMIN → allow, unconditionally, for every action on every resource.
//  2. Resource-specific owner/creator/assignee/role rules.
//  3. Otherwise → deny.
//
// The function is total: any (kind, action) pair outside the rule tables,
// and any unknown role, denies rather than erroring. The resource must be
// non-nil; resolving a missing resource to a 404 is the caller's job and
// happens before authorization.
func Authorize(p *domain.Principal, action Action, res Resource) Decision {
	if p == nil {
		return deny(ReasonUnauthenticated)
	}
	if p.IsAdmin() {
		return allow()
	}

	var allowed bool
	switch v := res.(type) {
	case ProjectView:
		allowed = projectAllows(p, v, action)
	case TaskView:
		allowed = taskAllows(p, v, action)
	case RequestView:
		allowed = requestAllows(p, v, action)
	case CommentView:
		allowed = commentAllows(p, v, action)
	}
	if !allowed {
		return deny(ReasonPolicyDenied)
	}
	return allow()
}

// projectAllows implements the non-admin project rules. Only the owner may
// update, delete or hand over a project; task assignees and participants
// never gain write access through visibility.
func projectAllows(p *domain.Principal, v ProjectView, action Action) bool {
	switch action {
	case ActionView:
		// Owner, anyone assigned a task inside the project, or TEAM
		// (managers see every project).
		return v.OwnerID == p.ID || v.hasTaskAssignee(p.ID) || p.Role == domain.RoleTeam
	case ActionCreate:
		return p.Role == domain.RoleTeam
	case ActionUpdate, ActionDelete, ActionAssignOwner:
		return v.OwnerID == p.ID
	}
	return false
}

// taskAllows implements the non-admin task rules. Deleting is reserved for
// the project owner; the assignee may update but not delete.
func taskAllows(p *domain.Principal, v TaskView, action Action) bool {
	switch action {
	case ActionView:
		return v.AssigneeID == p.ID || projectAllows(p, v.Project, ActionView)
	case ActionCreate:
		return p.Role == domain.RoleTeam
	case ActionUpdate:
		return v.Project.OwnerID == p.ID || v.AssigneeID == p.ID
	case ActionDelete:
		return v.Project.OwnerID == p.ID
	case ActionAssign:
		return v.Project.OwnerID == p.ID || p.Role == domain.RoleTeam
	}
	return false
}

// requestAllows implements the non-admin request rules. Two asymmetries are
// deliberate business policy, not oversights:
//   - the assignee may update a request but never delete it (only the
//     creator can), and
//   - the current assignee may not reassign the request; handing it off
//     needs the creator's sign-off.
//
// View and update are evaluated independently — being able to see a
// request implies nothing about being able to change it.
func requestAllows(p *domain.Principal, v RequestView, action Action) bool {
	switch action {
	case ActionView, ActionComment:
		return v.CreatorID == p.ID || v.AssigneeID == p.ID || v.hasParticipant(p.ID)
	case ActionUpdate:
		return v.CreatorID == p.ID || v.AssigneeID == p.ID
	case ActionAssign:
		return v.CreatorID == p.ID
	case ActionUpdateStatus:
		// TEAM gets blanket status-update rights independent of
		// participation; triage must not wait for an invite.
		return v.CreatorID == p.ID || v.AssigneeID == p.ID || p.Role == domain.RoleTeam
	case ActionDelete:
		return v.CreatorID == p.ID
	}
	return false
}

// commentAllows delegates to the parent request: viewing a comment needs
// request view, creating one needs request comment, and deleting one needs
// request comment plus authorship.
func commentAllows(p *domain.Principal, v CommentView, action Action) bool {
	switch action {
	case ActionView:
		return requestAllows(p, v.Request, ActionView)
	case ActionCreate:
		return requestAllows(p, v.Request, ActionComment)
	case ActionDelete:
		return requestAllows(p, v.Request, ActionComment) && v.AuthorID == p.ID
	}
	return false
}
