package domain

import "errors"

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrWrongArea        = errors.New("wrong area")
	ErrMissingWorkspace = errors.New("missing workspace identifier")
	ErrNotAMember       = errors.New("not a workspace member")
	ErrForbidden        = errors.New("access forbidden")

	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrRequestNotFound   = errors.New("request not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)
