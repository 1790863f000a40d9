package ports

import (
	"context"
	"time"
)

// AuditEvent records one authorization-relevant occurrence: a denied
// decision or a successful mutation. Events for the same workspace are
// persisted in the order they were recorded.
type AuditEvent struct {
	WorkspaceID string    `bson:"workspace_id"`
	ActorID     string    `bson:"actor_id"`
	Resource    string    `bson:"resource"`
	ResourceID  string    `bson:"resource_id,omitempty"`
	Action      string    `bson:"action"`
	Allowed     bool      `bson:"allowed"`
	Reason      string    `bson:"reason"`
	At          time.Time `bson:"at"`
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event AuditEvent) error
}

// AuditRecorder is the write side handed to services and middleware.
// Recording must never block the request path.
type AuditRecorder interface {
	Record(event AuditEvent)
}
