package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskdeck/project-system/internal/core/domain"
	"github.com/taskdeck/project-system/internal/core/ports"
)

func newTaskService() (*TaskService, *stubProjectRepo, *stubTaskRepo, *auditSink) {
	projects := newStubProjectRepo()
	tasks := newStubTaskRepo()
	audit := &auditSink{}
	svc := NewTaskService(tasks, projects, audit, discardLogger)
	return svc, projects, tasks, audit
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestTaskService_Create_MissingParentIs404(t *testing.T) {
	svc, _, _, audit := newTaskService()

	_, err := svc.Create(context.Background(), principal("pm", domain.RoleTeam), ports.CreateTaskInput{
		WorkspaceID: "W1",
		ProjectID:   "P999",
		Title:       "orphan",
	})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	// Existence is resolved before authorization, so nothing was audited.
	if len(audit.events) != 0 {
		t.Errorf("missing parent must not produce a policy decision, got %d events", len(audit.events))
	}
}

func TestTaskService_Create_Team(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")

	task, err := svc.Create(context.Background(), principal("pm", domain.RoleTeam), ports.CreateTaskInput{
		WorkspaceID: "W1",
		ProjectID:   proj.ID,
		Title:       "Build landing page",
		AssigneeID:  "consultant1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != domain.TaskStatusOpen {
		t.Errorf("new task must start open, got %q", task.Status)
	}
	if task.CreatorID != "pm" {
		t.Errorf("creator: want pm, got %q", task.CreatorID)
	}
	if len(tasks.byID) != 1 {
		t.Errorf("expected 1 stored task, got %d", len(tasks.byID))
	}
}

func TestTaskService_Create_ClientDenied(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")

	_, err := svc.Create(context.Background(), principal("c1", domain.RoleClient), ports.CreateTaskInput{
		WorkspaceID: "W1",
		ProjectID:   proj.ID,
		Title:       "nope",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(tasks.byID) != 0 {
		t.Error("denied create must not persist anything")
	}
}

// ---------------------------------------------------------------------------
// Get / ListByProject
// ---------------------------------------------------------------------------

func TestTaskService_Get_AssigneeSeesOwnTask(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")
	task := seedTask(tasks, "W1", proj.ID, "consultant1")

	got, err := svc.Get(context.Background(), principal("consultant1", domain.RoleConsultant), "W1", task.ID)
	if err != nil {
		t.Fatalf("assignee should see own task: %v", err)
	}
	if got.ID != task.ID {
		t.Errorf("want %q, got %q", task.ID, got.ID)
	}
}

func TestTaskService_Get_StrangerDenied(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")
	task := seedTask(tasks, "W1", proj.ID, "consultant1")

	_, err := svc.Get(context.Background(), principal("stranger", domain.RoleClient), "W1", task.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskService_ListByProject_GatedOnProjectView(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")
	seedTask(tasks, "W1", proj.ID, "consultant1")
	seedTask(tasks, "W1", proj.ID, "")

	// A project-visible principal sees every task in the project.
	list, err := svc.ListByProject(context.Background(), principal("consultant1", domain.RoleConsultant), "W1", proj.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(list))
	}

	// A stranger is denied at the project gate, not given an empty list.
	_, err = svc.ListByProject(context.Background(), principal("stranger", domain.RoleClient), "W1", proj.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete asymmetry
// ---------------------------------------------------------------------------

func TestTaskService_Update_AssigneeAllowed(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")
	task := seedTask(tasks, "W1", proj.ID, "consultant1")

	status := string(domain.TaskStatusInProgress)
	got, err := svc.Update(context.Background(), principal("consultant1", domain.RoleConsultant), ports.UpdateTaskInput{
		WorkspaceID: "W1",
		TaskID:      task.ID,
		Status:      &status,
	})
	if err != nil {
		t.Fatalf("assignee update failed: %v", err)
	}
	if got.Status != domain.TaskStatusInProgress {
		t.Errorf("status not updated: %q", got.Status)
	}
}

func TestTaskService_Delete_AssigneeDenied(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")
	task := seedTask(tasks, "W1", proj.ID, "consultant1")

	// The assignee may update but never delete; deletion is the owner's.
	err := svc.Delete(context.Background(), principal("consultant1", domain.RoleConsultant), "W1", task.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(tasks.byID) != 1 {
		t.Error("denied delete must not remove the task")
	}
}

func TestTaskService_Delete_ProjectOwner(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")
	task := seedTask(tasks, "W1", proj.ID, "consultant1")

	if err := svc.Delete(context.Background(), principal("owner1", domain.RoleTeam), "W1", task.ID); err != nil {
		t.Fatalf("project owner delete failed: %v", err)
	}
	if len(tasks.byID) != 0 {
		t.Error("task not removed")
	}
}

// ---------------------------------------------------------------------------
// Assign
// ---------------------------------------------------------------------------

func TestTaskService_Assign_ProjectOwner(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")
	task := seedTask(tasks, "W1", proj.ID, "")

	got, err := svc.Assign(context.Background(), principal("owner1", domain.RoleTeam), "W1", task.ID, "consultant1")
	if err != nil {
		t.Fatalf("owner assign failed: %v", err)
	}
	if got.AssigneeID != "consultant1" {
		t.Errorf("assignee: want consultant1, got %q", got.AssigneeID)
	}
}

func TestTaskService_Assign_TeamNonOwnerAllowed(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")
	task := seedTask(tasks, "W1", proj.ID, "")

	_, err := svc.Assign(context.Background(), principal("pm2", domain.RoleTeam), "W1", task.ID, "consultant1")
	if err != nil {
		t.Fatalf("team assign failed: %v", err)
	}
}

func TestTaskService_Assign_AssigneeCannotReassign(t *testing.T) {
	svc, projects, tasks, _ := newTaskService()
	proj := seedProject(projects, "W1", "owner1")
	task := seedTask(tasks, "W1", proj.ID, "consultant1")

	_, err := svc.Assign(context.Background(), principal("consultant1", domain.RoleConsultant), "W1", task.ID, "consultant2")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("assignee must not hand off the task, got %v", err)
	}
}
