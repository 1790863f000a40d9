package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskdeck/project-system/internal/api/handler"
	"github.com/taskdeck/project-system/internal/api/middleware"
	"github.com/taskdeck/project-system/internal/core/authz"
	"github.com/taskdeck/project-system/internal/core/ports"
	"github.com/taskdeck/project-system/internal/core/service"
	mongodb "github.com/taskdeck/project-system/internal/infrastructure/db/mongo"
	redisdb "github.com/taskdeck/project-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Route groups mirror the area partition: /admin/v1 sits behind the
// admin-area gate, /v1 behind the app-area gate with workspace scoping.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskdeck"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	workspaceRepo := mongodb.NewWorkspaceRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)

	// --- Authorization core ---
	membershipCache := redisdb.NewMembershipCache(rdb, workspaceRepo)
	gate := authz.NewGate(membershipCache)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	workspaceService := service.NewWorkspaceService(workspaceRepo, membershipCache, log)
	projectService := service.NewProjectService(projectRepo, taskRepo, audit, log)
	taskService := service.NewTaskService(taskRepo, projectRepo, audit, log)
	requestService := service.NewRequestService(requestRepo, audit, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userRepo, workspaceService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	requestHandler := handler.NewRequestHandler(requestService)

	authMW := middleware.Auth(jwtSecret)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Admin area ---
	admin := e.Group("/admin/v1", authMW, middleware.Area(gate, authz.AreaAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/workspaces", adminHandler.ListWorkspaces)
	admin.POST("/workspaces", adminHandler.CreateWorkspace)
	admin.POST("/workspaces/:workspace_id/members/:user_id", adminHandler.AttachMember)
	admin.DELETE("/workspaces/:workspace_id/members/:user_id", adminHandler.DetachMember)

	// --- App area (workspace-scoped) ---
	app := e.Group("/v1/workspaces/:workspace_id", authMW, middleware.Area(gate, authz.AreaApp))

	app.GET("/projects", projectHandler.List)
	app.POST("/projects", projectHandler.Create)
	app.GET("/projects/:project_id", projectHandler.Get)
	app.PATCH("/projects/:project_id", projectHandler.Update)
	app.DELETE("/projects/:project_id", projectHandler.Delete)
	app.PUT("/projects/:project_id/owner", projectHandler.AssignOwner)

	app.GET("/projects/:project_id/tasks", taskHandler.List)
	app.POST("/projects/:project_id/tasks", taskHandler.Create)
	app.GET("/tasks/:task_id", taskHandler.Get)
	app.PATCH("/tasks/:task_id", taskHandler.Update)
	app.DELETE("/tasks/:task_id", taskHandler.Delete)
	app.PUT("/tasks/:task_id/assignee", taskHandler.Assign)

	app.GET("/requests", requestHandler.List)
	app.POST("/requests", requestHandler.Create)
	app.GET("/requests/:request_id", requestHandler.Get)
	app.PATCH("/requests/:request_id", requestHandler.Update)
	app.DELETE("/requests/:request_id", requestHandler.Delete)
	app.PUT("/requests/:request_id/assignee", requestHandler.Assign)
	app.PUT("/requests/:request_id/status", requestHandler.UpdateStatus)
	app.GET("/requests/:request_id/comments", requestHandler.ListComments)
	app.POST("/requests/:request_id/comments", requestHandler.AddComment)
	app.DELETE("/requests/:request_id/comments/:comment_id", requestHandler.DeleteComment)

	return e
}
