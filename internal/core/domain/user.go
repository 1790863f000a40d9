package domain

import "time"

// User models an account in the system. Role is stored canonically; legacy
// spellings are normalized on read. TeamType is display metadata for
// consultant accounts and carries no authorization weight.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	TeamType     string    `json:"team_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
