package utils

import "errors"

var (
	ErrNoActiveAccount    = errors.New("no active account")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccessRevoked      = errors.New("access revoked")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
)
