package ports

import (
	"context"

	"github.com/taskdeck/project-system/internal/core/domain"
)

// WorkspaceService covers the admin-area workspace management surface.
// Membership detach is the only way a member ever leaves a workspace;
// nothing expires or removes memberships implicitly.
type WorkspaceService interface {
	Create(ctx context.Context, p *domain.Principal, name, ownerID string) (*domain.Workspace, error)
	List(ctx context.Context, p *domain.Principal) ([]*domain.Workspace, error)
	AttachMember(ctx context.Context, p *domain.Principal, workspaceID, userID string) error
	DetachMember(ctx context.Context, p *domain.Principal, workspaceID, userID string) error
}
