package service

import (
	"time"

	"github.com/taskdeck/project-system/internal/core/authz"
	"github.com/taskdeck/project-system/internal/core/domain"
	"github.com/taskdeck/project-system/internal/core/ports"
)

// recordDecision writes an audit event for a policy decision. Denials are
// always recorded; allowed decisions only when they belong to a mutation
// (plain reads would swamp the trail). The recorder is optional.
func recordDecision(rec ports.AuditRecorder, p *domain.Principal, workspaceID, resource, resourceID string, action authz.Action, d authz.Decision) {
	if rec == nil || p == nil {
		return
	}
	if d.Allow && action == authz.ActionView {
		return
	}
	rec.Record(ports.AuditEvent{
		WorkspaceID: workspaceID,
		ActorID:     p.ID,
		Resource:    resource,
		ResourceID:  resourceID,
		Action:      string(action),
		Allowed:     d.Allow,
		Reason:      string(d.Reason),
		At:          time.Now().UTC(),
	})
}
