package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/project-system/internal/api/middleware"
	"github.com/taskdeck/project-system/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /v1/workspaces/:workspace_id/projects/:project_id/tasks.
func (h *TaskHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListByProject(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create handles POST /v1/workspaces/:workspace_id/projects/:project_id/tasks.
//
// @Summary      Create a task in a project
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        workspace_id  path      string             true  "Workspace id"
// @Param        project_id    path      string             true  "Project id"
// @Param        body          body      createTaskRequest  true  "Task details"
// @Success      201           {object}  domain.Task
// @Failure      403           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /v1/workspaces/{workspace_id}/projects/{project_id}/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), p, ports.CreateTaskInput{
		WorkspaceID: middleware.WorkspaceID(c),
		ProjectID:   c.Param("project_id"),
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// Get handles GET /v1/workspaces/:workspace_id/tasks/:task_id.
func (h *TaskHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("task_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Update handles PATCH /v1/workspaces/:workspace_id/tasks/:task_id.
func (h *TaskHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.Update(c.Request().Context(), p, ports.UpdateTaskInput{
		WorkspaceID: middleware.WorkspaceID(c),
		TaskID:      c.Param("task_id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /v1/workspaces/:workspace_id/tasks/:task_id.
func (h *TaskHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("task_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Assign handles PUT /v1/workspaces/:workspace_id/tasks/:task_id/assignee.
func (h *TaskHandler) Assign(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req assignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.Assign(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("task_id"), req.AssigneeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}
