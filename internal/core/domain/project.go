package domain

import "time"

// Project is a workspace-scoped container for tasks. The creating principal
// becomes its owner; ownership can later be handed over explicitly.
type Project struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	WorkspaceID string    `json:"workspace_id" bson:"workspace_id"`
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task belongs to a project and optionally carries an assignee.
type Task struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	WorkspaceID string     `json:"workspace_id" bson:"workspace_id"`
	ProjectID   string     `json:"project_id" bson:"project_id"`
	CreatorID   string     `json:"creator_id" bson:"creator_id"`
	AssigneeID  string     `json:"assignee_id,omitempty" bson:"assignee_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Status      TaskStatus `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
