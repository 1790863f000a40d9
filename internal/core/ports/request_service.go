package ports

import (
	"context"

	"github.com/taskdeck/project-system/internal/core/domain"
)

// CreateRequestInput carries all data needed to open a request. The creator
// becomes the first participant.
type CreateRequestInput struct {
	WorkspaceID string
	Title       string
	Body        string
}

// UpdateRequestInput carries the mutable request fields.
type UpdateRequestInput struct {
	WorkspaceID string
	RequestID   string
	Title       *string
	Body        *string
}

// RequestService is the application surface for requests and their
// comments. Assigning a request accrues the assignee as a participant
// immediately after the policy check allows the action.
type RequestService interface {
	Create(ctx context.Context, p *domain.Principal, in CreateRequestInput) (*domain.Request, error)
	Get(ctx context.Context, p *domain.Principal, workspaceID, requestID string) (*domain.Request, error)
	List(ctx context.Context, p *domain.Principal, workspaceID string) ([]*domain.Request, error)
	Update(ctx context.Context, p *domain.Principal, in UpdateRequestInput) (*domain.Request, error)
	Delete(ctx context.Context, p *domain.Principal, workspaceID, requestID string) error
	Assign(ctx context.Context, p *domain.Principal, workspaceID, requestID, assigneeID string) (*domain.Request, error)
	UpdateStatus(ctx context.Context, p *domain.Principal, workspaceID, requestID, status string) (*domain.Request, error)

	ListComments(ctx context.Context, p *domain.Principal, workspaceID, requestID string) ([]domain.RequestComment, error)
	AddComment(ctx context.Context, p *domain.Principal, workspaceID, requestID, body string) (*domain.RequestComment, error)
	DeleteComment(ctx context.Context, p *domain.Principal, workspaceID, requestID, commentID string) error
}
