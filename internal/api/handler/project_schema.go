package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createProjectRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description,omitempty" validate:"omitempty,max=4000"`
}

type updateProjectRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=4000"`
}

type assignOwnerRequest struct {
	OwnerID string `json:"owner_id" validate:"required"`
}

type createTaskRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description,omitempty" validate:"omitempty,max=4000"`
	AssigneeID  string `json:"assignee_id,omitempty"`
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=4000"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress done"`
}

type assignTaskRequest struct {
	AssigneeID string `json:"assignee_id" validate:"required"`
}
