package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/project-system/internal/core/domain"
	"github.com/taskdeck/project-system/internal/core/ports"
)

// MembershipInvalidator drops a cached membership entry. Backed by the
// Redis membership cache; a nil invalidator is a no-op.
type MembershipInvalidator interface {
	Invalidate(ctx context.Context, userID, workspaceID string) error
}

// WorkspaceService implements the admin-area workspace management surface.
// Every operation is reserved for admin principals; workspace members
// manage resources inside a workspace, never the workspace itself.
type WorkspaceService struct {
	repo   ports.WorkspaceRepository
	cache  MembershipInvalidator
	logger zerolog.Logger
}

func NewWorkspaceService(repo ports.WorkspaceRepository, cache MembershipInvalidator, logger zerolog.Logger) *WorkspaceService {
	return &WorkspaceService{repo: repo, cache: cache, logger: logger}
}

func (s *WorkspaceService) Create(ctx context.Context, p *domain.Principal, name, ownerID string) (*domain.Workspace, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	ws, err := s.repo.Create(ctx, &domain.Workspace{
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("workspace_id", ws.ID).Str("owner_id", ownerID).Msg("workspace created")
	return ws, nil
}

func (s *WorkspaceService) List(ctx context.Context, p *domain.Principal) ([]*domain.Workspace, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *WorkspaceService) AttachMember(ctx context.Context, p *domain.Principal, workspaceID, userID string) error {
	if !p.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.repo.AttachMember(ctx, workspaceID, userID); err != nil {
		return err
	}
	s.logger.Info().Str("workspace_id", workspaceID).Str("user_id", userID).Msg("member attached")
	return nil
}

// DetachMember removes a member and drops the cached membership so the gate
// stops admitting the user immediately. Detach is the only path out of a
// workspace; memberships never expire on their own.
func (s *WorkspaceService) DetachMember(ctx context.Context, p *domain.Principal, workspaceID, userID string) error {
	if !p.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.repo.DetachMember(ctx, workspaceID, userID); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID, workspaceID); err != nil {
			s.logger.Warn().Err(err).Str("workspace_id", workspaceID).Str("user_id", userID).Msg("membership cache invalidation failed")
		}
	}
	s.logger.Info().Str("workspace_id", workspaceID).Str("user_id", userID).Msg("member detached")
	return nil
}
