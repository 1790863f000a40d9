package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/project-system/internal/core/authz"
	"github.com/taskdeck/project-system/internal/core/domain"
)

type stubMembers struct {
	members map[string]bool // "userID/workspaceID"
	err     error
}

func (s *stubMembers) IsMember(_ context.Context, userID, workspaceID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.members[userID+"/"+workspaceID], nil
}

func newAppContext(e *echo.Echo, p *domain.Principal, workspaceID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if workspaceID != "" {
		c.SetParamNames("workspace_id")
		c.SetParamValues(workspaceID)
	}
	if p != nil {
		c.Set(PrincipalKey, p)
	}
	return c, rec
}

func passThrough(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAreaMiddleware_MemberAdmitted(t *testing.T) {
	e := echo.New()
	gate := authz.NewGate(&stubMembers{members: map[string]bool{"U1/W1": true}})
	c, rec := newAppContext(e, &domain.Principal{ID: "U1", Role: domain.RoleConsultant}, "W1")

	handler := Area(gate, authz.AreaApp)(func(c echo.Context) error {
		if WorkspaceID(c) != "W1" {
			t.Errorf("workspace id not stored, got %q", WorkspaceID(c))
		}
		return passThrough(c)
	})
	if err := handler(c); err != nil {
		t.Fatalf("member must be admitted: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAreaMiddleware_Unauthenticated(t *testing.T) {
	e := echo.New()
	gate := authz.NewGate(&stubMembers{})
	c, _ := newAppContext(e, nil, "W1")

	err := Area(gate, authz.AreaApp)(passThrough)(c)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAreaMiddleware_AdminBlockedFromAppArea(t *testing.T) {
	e := echo.New()
	gate := authz.NewGate(&stubMembers{members: map[string]bool{"root/W1": true}})
	c, _ := newAppContext(e, &domain.Principal{ID: "root", Role: domain.RoleAdmin}, "W1")

	// Area is a partition, not an additive privilege: even membership does
	// not admit an admin to app routes.
	err := Area(gate, authz.AreaApp)(passThrough)(c)
	if !errors.Is(err, domain.ErrWrongArea) {
		t.Fatalf("expected ErrWrongArea, got %v", err)
	}
}

func TestAreaMiddleware_AppRoleBlockedFromAdminArea(t *testing.T) {
	e := echo.New()
	gate := authz.NewGate(&stubMembers{})
	c, _ := newAppContext(e, &domain.Principal{ID: "pm", Role: domain.RoleTeam}, "")

	err := Area(gate, authz.AreaAdmin)(passThrough)(c)
	if !errors.Is(err, domain.ErrWrongArea) {
		t.Fatalf("expected ErrWrongArea, got %v", err)
	}
}

func TestAreaMiddleware_AdminAreaSkipsWorkspaceScoping(t *testing.T) {
	e := echo.New()
	gate := authz.NewGate(&stubMembers{}) // admin is a member of nothing
	c, rec := newAppContext(e, &domain.Principal{ID: "root", Role: domain.RoleAdmin}, "")

	if err := Area(gate, authz.AreaAdmin)(passThrough)(c); err != nil {
		t.Fatalf("admin-area requests are not workspace-scoped: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAreaMiddleware_MissingWorkspaceIsBadRequest(t *testing.T) {
	e := echo.New()
	gate := authz.NewGate(&stubMembers{})
	c, _ := newAppContext(e, &domain.Principal{ID: "U1", Role: domain.RoleClient}, "")

	// No workspace id anywhere: the request is malformed, not forbidden.
	err := Area(gate, authz.AreaApp)(passThrough)(c)
	if !errors.Is(err, domain.ErrMissingWorkspace) {
		t.Fatalf("expected ErrMissingWorkspace, got %v", err)
	}
}

func TestAreaMiddleware_HeaderFallback(t *testing.T) {
	e := echo.New()
	gate := authz.NewGate(&stubMembers{members: map[string]bool{"U1/W9": true}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(WorkspaceHeader, "W9")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(PrincipalKey, &domain.Principal{ID: "U1", Role: domain.RoleClient})

	if err := Area(gate, authz.AreaApp)(passThrough)(c); err != nil {
		t.Fatalf("header-scoped request must be admitted: %v", err)
	}
	if WorkspaceID(c) != "W9" {
		t.Errorf("workspace id not taken from header, got %q", WorkspaceID(c))
	}
}

func TestAreaMiddleware_NonMemberDenied(t *testing.T) {
	e := echo.New()
	gate := authz.NewGate(&stubMembers{members: map[string]bool{"U1/W1": true}})
	c, _ := newAppContext(e, &domain.Principal{ID: "U1", Role: domain.RoleClient}, "W2")

	err := Area(gate, authz.AreaApp)(passThrough)(c)
	if !errors.Is(err, domain.ErrNotAMember) {
		t.Fatalf("expected ErrNotAMember, got %v", err)
	}
}

func TestAreaMiddleware_StoreErrorFailsClosed(t *testing.T) {
	e := echo.New()
	gate := authz.NewGate(&stubMembers{err: errors.New("backend down")})
	c, _ := newAppContext(e, &domain.Principal{ID: "U1", Role: domain.RoleClient}, "W1")

	err := Area(gate, authz.AreaApp)(passThrough)(c)
	if !errors.Is(err, domain.ErrNotAMember) {
		t.Fatalf("store failure must deny, got %v", err)
	}
}
