package domain

import "time"

// Workspace is the tenant boundary. Every app-area resource lives in
// exactly one workspace.
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	MemberIDs []string  `json:"member_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasMember reports whether the user is a member of the workspace: present
// in the membership relation or the workspace owner.
func (w *Workspace) HasMember(userID string) bool {
	if w == nil {
		return false
	}
	if w.OwnerID == userID {
		return true
	}
	for _, id := range w.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
