package ports

import (
	"context"

	"github.com/taskdeck/project-system/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project.
type CreateProjectInput struct {
	WorkspaceID string
	Name        string
	Description string
}

// UpdateProjectInput carries the mutable project fields. Nil pointers leave
// the field untouched.
type UpdateProjectInput struct {
	WorkspaceID string
	ProjectID   string
	Name        *string
	Description *string
}

// ProjectService is the application surface for projects. Every method
// authorizes the principal against the policy engine before touching
// persistence; a denied check surfaces as domain.ErrForbidden.
type ProjectService interface {
	Create(ctx context.Context, p *domain.Principal, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, p *domain.Principal, workspaceID, projectID string) (*domain.Project, error)
	List(ctx context.Context, p *domain.Principal, workspaceID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Principal, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, p *domain.Principal, workspaceID, projectID string) error
	AssignOwner(ctx context.Context, p *domain.Principal, workspaceID, projectID, newOwnerID string) (*domain.Project, error)
}

// CreateTaskInput carries all data needed to create a task.
type CreateTaskInput struct {
	WorkspaceID string
	ProjectID   string
	Title       string
	Description string
	AssigneeID  string
}

// UpdateTaskInput carries the mutable task fields.
type UpdateTaskInput struct {
	WorkspaceID string
	TaskID      string
	Title       *string
	Description *string
	Status      *string
}

// TaskService is the application surface for tasks.
type TaskService interface {
	Create(ctx context.Context, p *domain.Principal, in CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, p *domain.Principal, workspaceID, taskID string) (*domain.Task, error)
	ListByProject(ctx context.Context, p *domain.Principal, workspaceID, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, p *domain.Principal, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, p *domain.Principal, workspaceID, taskID string) error
	Assign(ctx context.Context, p *domain.Principal, workspaceID, taskID, assigneeID string) (*domain.Task, error)
}
