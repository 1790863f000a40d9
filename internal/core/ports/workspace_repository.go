package ports

import (
	"context"

	"github.com/taskdeck/project-system/internal/core/domain"
)

// WorkspaceRepository defines the interface for workspace persistence,
// including the membership relation.
type WorkspaceRepository interface {
	Create(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error)
	FindByID(ctx context.Context, id string) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
	AttachMember(ctx context.Context, workspaceID, userID string) error
	DetachMember(ctx context.Context, workspaceID, userID string) error
}
