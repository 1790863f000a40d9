package handler

type createRequestRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Body  string `json:"body,omitempty" validate:"omitempty,max=8000"`
}

type updateRequestRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Body  *string `json:"body,omitempty" validate:"omitempty,max=8000"`
}

type assignRequestRequest struct {
	AssigneeID string `json:"assignee_id" validate:"required"`
}

type updateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

type addCommentRequest struct {
	Body string `json:"body" validate:"required,max=8000"`
}
