package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/project-system/internal/core/authz"
	"github.com/taskdeck/project-system/internal/core/domain"
	"github.com/taskdeck/project-system/internal/core/ports"
)

// RequestService implements requests and their comments with policy
// enforcement. Participant accrual is a service-layer side effect performed
// immediately after an allowed assign — the policy engine itself never
// mutates anything.
type RequestService struct {
	requests ports.RequestRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewRequestService(requests ports.RequestRepository, audit ports.AuditRecorder, logger zerolog.Logger) *RequestService {
	return &RequestService{requests: requests, audit: audit, logger: logger}
}

func requestView(r *domain.Request) authz.RequestView {
	return authz.RequestView{
		CreatorID:      r.CreatorID,
		AssigneeID:     r.AssigneeID,
		ParticipantIDs: r.ParticipantIDs,
	}
}

func (s *RequestService) authorize(p *domain.Principal, action authz.Action, r *domain.Request) error {
	d := authz.Authorize(p, action, requestView(r))
	recordDecision(s.audit, p, r.WorkspaceID, "request", r.ID, action, d)
	if !d.Allow {
		return domain.ErrForbidden
	}
	return nil
}

// Create opens a request. Any principal admitted to the workspace may open
// one; the creator becomes the first participant.
func (s *RequestService) Create(ctx context.Context, p *domain.Principal, in ports.CreateRequestInput) (*domain.Request, error) {
	now := time.Now().UTC()
	req, err := s.requests.Create(ctx, &domain.Request{
		WorkspaceID:    in.WorkspaceID,
		CreatorID:      p.ID,
		ParticipantIDs: []string{p.ID},
		Title:          in.Title,
		Body:           in.Body,
		Status:         domain.RequestStatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create request")
		return nil, err
	}

	s.logger.Info().Str("request_id", req.ID).Str("workspace_id", in.WorkspaceID).Str("creator_id", p.ID).Msg("request created")
	return req, nil
}

func (s *RequestService) Get(ctx context.Context, p *domain.Principal, workspaceID, requestID string) (*domain.Request, error) {
	req, err := s.requests.FindByID(ctx, workspaceID, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(p, authz.ActionView, req); err != nil {
		return nil, err
	}
	return req, nil
}

// List returns the workspace's requests visible to the principal: the ones
// it created, is assigned to, or participates in. Admins see all.
func (s *RequestService) List(ctx context.Context, p *domain.Principal, workspaceID string) ([]*domain.Request, error) {
	all, err := s.requests.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.Request, 0, len(all))
	for _, req := range all {
		if d := authz.Authorize(p, authz.ActionView, requestView(req)); d.Allow {
			visible = append(visible, req)
		}
	}
	return visible, nil
}

func (s *RequestService) Update(ctx context.Context, p *domain.Principal, in ports.UpdateRequestInput) (*domain.Request, error) {
	req, err := s.requests.FindByID(ctx, in.WorkspaceID, in.RequestID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(p, authz.ActionUpdate, req); err != nil {
		return nil, err
	}

	if in.Title != nil {
		req.Title = *in.Title
	}
	if in.Body != nil {
		req.Body = *in.Body
	}
	req.UpdatedAt = time.Now().UTC()

	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *RequestService) Delete(ctx context.Context, p *domain.Principal, workspaceID, requestID string) error {
	req, err := s.requests.FindByID(ctx, workspaceID, requestID)
	if err != nil {
		return err
	}
	if err := s.authorize(p, authz.ActionDelete, req); err != nil {
		return err
	}

	if err := s.requests.Delete(ctx, workspaceID, requestID); err != nil {
		return err
	}
	s.logger.Info().Str("request_id", requestID).Str("actor_id", p.ID).Msg("request deleted")
	return nil
}

// Assign sets the assignee and accrues it as a participant. Participants
// are never removed — reassigning keeps the previous assignee on the
// request.
func (s *RequestService) Assign(ctx context.Context, p *domain.Principal, workspaceID, requestID, assigneeID string) (*domain.Request, error) {
	req, err := s.requests.FindByID(ctx, workspaceID, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(p, authz.ActionAssign, req); err != nil {
		return nil, err
	}

	req.AssigneeID = assigneeID
	req.AddParticipant(assigneeID)
	req.UpdatedAt = time.Now().UTC()

	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", requestID).Str("assignee_id", assigneeID).Str("actor_id", p.ID).Msg("request assigned")
	return req, nil
}

func (s *RequestService) UpdateStatus(ctx context.Context, p *domain.Principal, workspaceID, requestID, status string) (*domain.Request, error) {
	req, err := s.requests.FindByID(ctx, workspaceID, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(p, authz.ActionUpdateStatus, req); err != nil {
		return nil, err
	}

	req.Status = domain.RequestStatus(status)
	req.UpdatedAt = time.Now().UTC()
	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *RequestService) ListComments(ctx context.Context, p *domain.Principal, workspaceID, requestID string) ([]domain.RequestComment, error) {
	req, err := s.requests.FindByID(ctx, workspaceID, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(p, authz.ActionView, req); err != nil {
		return nil, err
	}
	return req.Comments, nil
}

func (s *RequestService) AddComment(ctx context.Context, p *domain.Principal, workspaceID, requestID, body string) (*domain.RequestComment, error) {
	req, err := s.requests.FindByID(ctx, workspaceID, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(p, authz.ActionComment, req); err != nil {
		return nil, err
	}

	comment := domain.RequestComment{
		ID:        generateCommentID(),
		AuthorID:  p.ID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	req.Comments = append(req.Comments, comment)
	req.AddParticipant(p.ID)
	req.UpdatedAt = comment.CreatedAt

	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *RequestService) DeleteComment(ctx context.Context, p *domain.Principal, workspaceID, requestID, commentID string) error {
	req, err := s.requests.FindByID(ctx, workspaceID, requestID)
	if err != nil {
		return err
	}

	idx := -1
	for i, c := range req.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrCommentNotFound
	}

	view := authz.CommentView{Request: requestView(req), AuthorID: req.Comments[idx].AuthorID}
	d := authz.Authorize(p, authz.ActionDelete, view)
	recordDecision(s.audit, p, workspaceID, "comment", commentID, authz.ActionDelete, d)
	if !d.Allow {
		return domain.ErrForbidden
	}

	req.Comments = append(req.Comments[:idx], req.Comments[idx+1:]...)
	req.UpdatedAt = time.Now().UTC()
	return s.requests.Update(ctx, req)
}

// generateCommentID returns a unique comment id in the format C-XXXXXXXX.
func generateCommentID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("C-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("C-%08X", b)
}
