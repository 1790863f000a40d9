package domain

// Principal is the authenticated actor an authorization decision is made
// for. It is resolved by the auth layer before any check runs and threaded
// explicitly through every call — there is no ambient "current user".
type Principal struct {
	ID           string
	Role         Role
	WorkspaceIDs map[string]struct{} // workspaces the principal is attached to
}

// NewPrincipal builds a Principal from an id, a canonical role and the set
// of workspace ids the principal is a member of.
func NewPrincipal(id string, role Role, workspaceIDs []string) *Principal {
	set := make(map[string]struct{}, len(workspaceIDs))
	for _, w := range workspaceIDs {
		set[w] = struct{}{}
	}
	return &Principal{ID: id, Role: role, WorkspaceIDs: set}
}

// IsAdmin reports whether the principal holds the superuser role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// AttachedTo reports whether the principal appears in the membership
// relation for the given workspace. Workspace ownership is checked
// separately by the membership store.
func (p *Principal) AttachedTo(workspaceID string) bool {
	if p == nil {
		return false
	}
	_, ok := p.WorkspaceIDs[workspaceID]
	return ok
}
