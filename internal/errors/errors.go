package errors

import (
	"errors"
)

var (
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidRefresh       = errors.New("invalid refresh token")
	ErrTokenRevoked         = errors.New("token revoked")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeInactive     = errors.New("employee inactive")
	ErrLoginIDTaken         = errors.New("login id already in use")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrPasswordReused       = errors.New("new password must differ from the current one")
)
