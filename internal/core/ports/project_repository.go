package ports

import (
	"context"

	"github.com/taskdeck/project-system/internal/core/domain"
)

// ProjectRepository defines the interface for project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, workspaceID, id string) (*domain.Project, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, workspaceID, id string) error
}

// TaskRepository defines the interface for task persistence.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, workspaceID, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, workspaceID, projectID string) ([]*domain.Task, error)
	// AssigneesByProject returns the distinct assignee ids of the
	// project's tasks; project visibility derives from it.
	AssigneesByProject(ctx context.Context, workspaceID, projectID string) ([]string, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, workspaceID, id string) error
}

// RequestRepository defines the interface for request persistence. Comments
// are embedded in their parent request document.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.Request) (*domain.Request, error)
	FindByID(ctx context.Context, workspaceID, id string) (*domain.Request, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Request, error)
	Update(ctx context.Context, r *domain.Request) error
	Delete(ctx context.Context, workspaceID, id string) error
}
