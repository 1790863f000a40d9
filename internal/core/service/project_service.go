package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/project-system/internal/core/authz"
	"github.com/taskdeck/project-system/internal/core/domain"
	"github.com/taskdeck/project-system/internal/core/ports"
)

// ProjectService implements project CRUD with policy enforcement. The
// pattern is uniform: resolve the resource (404 on miss), build the
// authorization view, authorize, then act. Policy checks never mutate;
// side effects happen here, after an allow.
type ProjectService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, tasks ports.TaskRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks, audit: audit, logger: logger}
}

// view assembles the authorization-relevant facts of a project: its owner
// plus the assignees of its tasks.
func (s *ProjectService) view(ctx context.Context, proj *domain.Project) (authz.ProjectView, error) {
	assignees, err := s.tasks.AssigneesByProject(ctx, proj.WorkspaceID, proj.ID)
	if err != nil {
		return authz.ProjectView{}, err
	}
	return authz.ProjectView{OwnerID: proj.OwnerID, TaskAssigneeIDs: assignees}, nil
}

func (s *ProjectService) authorize(ctx context.Context, p *domain.Principal, action authz.Action, proj *domain.Project) error {
	view, err := s.view(ctx, proj)
	if err != nil {
		return err
	}
	d := authz.Authorize(p, action, view)
	recordDecision(s.audit, p, proj.WorkspaceID, "project", proj.ID, action, d)
	if !d.Allow {
		return domain.ErrForbidden
	}
	return nil
}

func (s *ProjectService) Create(ctx context.Context, p *domain.Principal, in ports.CreateProjectInput) (*domain.Project, error) {
	d := authz.Authorize(p, authz.ActionCreate, authz.ProjectView{})
	recordDecision(s.audit, p, in.WorkspaceID, "project", "", authz.ActionCreate, d)
	if !d.Allow {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	proj, err := s.projects.Create(ctx, &domain.Project{
		WorkspaceID: in.WorkspaceID,
		OwnerID:     p.ID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", proj.ID).Str("workspace_id", in.WorkspaceID).Str("owner_id", p.ID).Msg("project created")
	return proj, nil
}

func (s *ProjectService) Get(ctx context.Context, p *domain.Principal, workspaceID, projectID string) (*domain.Project, error) {
	proj, err := s.projects.FindByID(ctx, workspaceID, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, authz.ActionView, proj); err != nil {
		return nil, err
	}
	return proj, nil
}

// List returns the workspace's projects the principal may view.
func (s *ProjectService) List(ctx context.Context, p *domain.Principal, workspaceID string) ([]*domain.Project, error) {
	all, err := s.projects.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.Project, 0, len(all))
	for _, proj := range all {
		view, err := s.view(ctx, proj)
		if err != nil {
			return nil, err
		}
		if d := authz.Authorize(p, authz.ActionView, view); d.Allow {
			visible = append(visible, proj)
		}
	}
	return visible, nil
}

func (s *ProjectService) Update(ctx context.Context, p *domain.Principal, in ports.UpdateProjectInput) (*domain.Project, error) {
	proj, err := s.projects.FindByID(ctx, in.WorkspaceID, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, authz.ActionUpdate, proj); err != nil {
		return nil, err
	}

	if in.Name != nil {
		proj.Name = *in.Name
	}
	if in.Description != nil {
		proj.Description = *in.Description
	}
	proj.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, proj); err != nil {
		return nil, err
	}
	return proj, nil
}

func (s *ProjectService) Delete(ctx context.Context, p *domain.Principal, workspaceID, projectID string) error {
	proj, err := s.projects.FindByID(ctx, workspaceID, projectID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, p, authz.ActionDelete, proj); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, workspaceID, projectID); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", projectID).Str("actor_id", p.ID).Msg("project deleted")
	return nil
}

// AssignOwner hands the project over to a new owner. Only the current
// owner (or an admin) may do this.
func (s *ProjectService) AssignOwner(ctx context.Context, p *domain.Principal, workspaceID, projectID, newOwnerID string) (*domain.Project, error) {
	proj, err := s.projects.FindByID(ctx, workspaceID, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, authz.ActionAssignOwner, proj); err != nil {
		return nil, err
	}

	proj.OwnerID = newOwnerID
	proj.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, proj); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", projectID).Str("new_owner_id", newOwnerID).Str("actor_id", p.ID).Msg("project owner reassigned")
	return proj, nil
}
