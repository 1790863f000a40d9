package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/project-system/internal/api/middleware"
	"github.com/taskdeck/project-system/internal/core/ports"
)

// RequestHandler handles HTTP requests for request and comment operations.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// List handles GET /v1/workspaces/:workspace_id/requests.
func (h *RequestHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	requests, err := h.service.List(c.Request().Context(), p, middleware.WorkspaceID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Create handles POST /v1/workspaces/:workspace_id/requests.
//
// @Summary      Open a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        workspace_id  path      string                true  "Workspace id"
// @Param        body          body      createRequestRequest  true  "Request details"
// @Success      201           {object}  domain.Request
// @Failure      403           {object}  errorResponse
// @Router       /v1/workspaces/{workspace_id}/requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), p, ports.CreateRequestInput{
		WorkspaceID: middleware.WorkspaceID(c),
		Title:       req.Title,
		Body:        req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get handles GET /v1/workspaces/:workspace_id/requests/:request_id.
func (h *RequestHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	req, err := h.service.Get(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("request_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, req)
}

// Update handles PATCH /v1/workspaces/:workspace_id/requests/:request_id.
func (h *RequestHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), p, ports.UpdateRequestInput{
		WorkspaceID: middleware.WorkspaceID(c),
		RequestID:   c.Param("request_id"),
		Title:       req.Title,
		Body:        req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/workspaces/:workspace_id/requests/:request_id.
func (h *RequestHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("request_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Assign handles PUT /v1/workspaces/:workspace_id/requests/:request_id/assignee.
//
// @Summary      Assign a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        workspace_id  path      string                true  "Workspace id"
// @Param        request_id    path      string                true  "Request id"
// @Param        body          body      assignRequestRequest  true  "Assignee"
// @Success      200           {object}  domain.Request
// @Failure      403           {object}  errorResponse
// @Router       /v1/workspaces/{workspace_id}/requests/{request_id}/assignee [put]
func (h *RequestHandler) Assign(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req assignRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	assigned, err := h.service.Assign(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("request_id"), req.AssigneeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assigned)
}

// UpdateStatus handles PUT /v1/workspaces/:workspace_id/requests/:request_id/status.
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.UpdateStatus(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("request_id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// ListComments handles GET /v1/workspaces/:workspace_id/requests/:request_id/comments.
func (h *RequestHandler) ListComments(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	comments, err := h.service.ListComments(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("request_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// AddComment handles POST /v1/workspaces/:workspace_id/requests/:request_id/comments.
func (h *RequestHandler) AddComment(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("request_id"), req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// DeleteComment handles DELETE /v1/workspaces/:workspace_id/requests/:request_id/comments/:comment_id.
func (h *RequestHandler) DeleteComment(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteComment(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("request_id"), c.Param("comment_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
