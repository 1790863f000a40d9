package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/project-system/internal/core/authz"
	"github.com/taskdeck/project-system/internal/core/domain"
	"github.com/taskdeck/project-system/internal/core/ports"
)

// TaskService implements task CRUD and assignment with policy enforcement.
type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository, audit ports.AuditRecorder, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, audit: audit, logger: logger}
}

// view assembles the task's authorization facts, including the parent
// project's (task visibility derives from project visibility).
func (s *TaskService) view(ctx context.Context, task *domain.Task) (authz.TaskView, error) {
	proj, err := s.projects.FindByID(ctx, task.WorkspaceID, task.ProjectID)
	if err != nil {
		return authz.TaskView{}, err
	}
	assignees, err := s.tasks.AssigneesByProject(ctx, task.WorkspaceID, task.ProjectID)
	if err != nil {
		return authz.TaskView{}, err
	}
	return authz.TaskView{
		Project:    authz.ProjectView{OwnerID: proj.OwnerID, TaskAssigneeIDs: assignees},
		AssigneeID: task.AssigneeID,
	}, nil
}

func (s *TaskService) authorize(ctx context.Context, p *domain.Principal, action authz.Action, task *domain.Task) error {
	view, err := s.view(ctx, task)
	if err != nil {
		return err
	}
	d := authz.Authorize(p, action, view)
	recordDecision(s.audit, p, task.WorkspaceID, "task", task.ID, action, d)
	if !d.Allow {
		return domain.ErrForbidden
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, p *domain.Principal, in ports.CreateTaskInput) (*domain.Task, error) {
	// The parent project must exist before anything is authorized.
	if _, err := s.projects.FindByID(ctx, in.WorkspaceID, in.ProjectID); err != nil {
		return nil, err
	}

	d := authz.Authorize(p, authz.ActionCreate, authz.TaskView{})
	recordDecision(s.audit, p, in.WorkspaceID, "task", "", authz.ActionCreate, d)
	if !d.Allow {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	task, err := s.tasks.Create(ctx, &domain.Task{
		WorkspaceID: in.WorkspaceID,
		ProjectID:   in.ProjectID,
		CreatorID:   p.ID,
		AssigneeID:  in.AssigneeID,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.TaskStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", task.ID).Str("project_id", in.ProjectID).Str("creator_id", p.ID).Msg("task created")
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, p *domain.Principal, workspaceID, taskID string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, workspaceID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, authz.ActionView, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListByProject returns the project's tasks, provided the principal may
// view the project. Per-task filtering is unnecessary: project visibility
// covers every task except the assignee path, and an assignee passes the
// project check anyway.
func (s *TaskService) ListByProject(ctx context.Context, p *domain.Principal, workspaceID, projectID string) ([]*domain.Task, error) {
	proj, err := s.projects.FindByID(ctx, workspaceID, projectID)
	if err != nil {
		return nil, err
	}
	assignees, err := s.tasks.AssigneesByProject(ctx, workspaceID, projectID)
	if err != nil {
		return nil, err
	}

	d := authz.Authorize(p, authz.ActionView, authz.ProjectView{OwnerID: proj.OwnerID, TaskAssigneeIDs: assignees})
	if !d.Allow {
		return nil, domain.ErrForbidden
	}

	return s.tasks.ListByProject(ctx, workspaceID, projectID)
}

func (s *TaskService) Update(ctx context.Context, p *domain.Principal, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, in.WorkspaceID, in.TaskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, authz.ActionUpdate, task); err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = domain.TaskStatus(*in.Status)
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, p *domain.Principal, workspaceID, taskID string) error {
	task, err := s.tasks.FindByID(ctx, workspaceID, taskID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, p, authz.ActionDelete, task); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, workspaceID, taskID); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", taskID).Str("actor_id", p.ID).Msg("task deleted")
	return nil
}

func (s *TaskService) Assign(ctx context.Context, p *domain.Principal, workspaceID, taskID, assigneeID string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, workspaceID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, authz.ActionAssign, task); err != nil {
		return nil, err
	}

	task.AssigneeID = assigneeID
	task.UpdatedAt = time.Now().UTC()
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", taskID).Str("assignee_id", assigneeID).Str("actor_id", p.ID).Msg("task assigned")
	return task, nil
}
