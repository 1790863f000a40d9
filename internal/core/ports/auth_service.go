package ports

import (
	"context"

	"github.com/taskdeck/project-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email, role, teamType string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
