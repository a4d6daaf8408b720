package service

import (
	"errors"
	"fmt"
)

var (
	// Credential and account errors
	ErrDuplicateUser      = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Movie lookup and catalog errors
	ErrInvalidFilter       = errors.New("invalid movie filter")
	ErrNoMoviesFound       = errors.New("no movies found")
	ErrDirectorNotFound    = errors.New("director not found")
	ErrUpstream            = errors.New("movie database unavailable")
	ErrMovieNotFound       = errors.New("movie not found")
	ErrMovieAlreadyDeleted = errors.New("movie already deleted")
	ErrMovieExists         = errors.New("movie already exists")
)

// StorageError reports an unexpected persistence failure. Callers map it to
// a server error; it is never retried here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ValidationError rejects input before any store call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
