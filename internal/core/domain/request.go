package domain

import "time"

// RequestStatus represents the triage state of a request.
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusResolved   RequestStatus = "resolved"
	RequestStatusClosed     RequestStatus = "closed"
)

// Request is a workspace-scoped ticket. Visibility is participation-based:
// creator, assignee and accrued participants. Participants only ever grow;
// nothing removes one implicitly.
type Request struct {
	ID             string           `json:"id" bson:"_id,omitempty"`
	WorkspaceID    string           `json:"workspace_id" bson:"workspace_id"`
	CreatorID      string           `json:"creator_id" bson:"creator_id"`
	AssigneeID     string           `json:"assignee_id,omitempty" bson:"assignee_id,omitempty"`
	ParticipantIDs []string         `json:"participant_ids" bson:"participant_ids"`
	Title          string           `json:"title" bson:"title"`
	Body           string           `json:"body,omitempty" bson:"body,omitempty"`
	Status         RequestStatus    `json:"status" bson:"status"`
	Comments       []RequestComment `json:"comments,omitempty" bson:"comments,omitempty"`
	CreatedAt      time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" bson:"updated_at"`
}

// RequestComment is embedded in its parent request.
type RequestComment struct {
	ID        string    `json:"id" bson:"id"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	Body      string    `json:"body" bson:"body"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// HasParticipant reports whether the user is in the participant set.
func (r *Request) HasParticipant(userID string) bool {
	for _, id := range r.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// AddParticipant accrues a participant. Idempotent; participants are never
// removed once added.
func (r *Request) AddParticipant(userID string) {
	if userID == "" || r.HasParticipant(userID) {
		return
	}
	r.ParticipantIDs = append(r.ParticipantIDs, userID)
}
