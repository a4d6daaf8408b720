package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/movies/internal/movies/metrics"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

// AccountService validates account requests and orchestrates the credential
// store. Password changes are only applied after the old password verifies.
type AccountService struct {
	Credentials *CredentialService
}

func (s *AccountService) CreateAccount(ctx context.Context, username, password string) error {
	if err := requireCredentials(username, password); err != nil {
		return err
	}

	_, err := s.Credentials.CreateUser(ctx, username, password)
	record("create", err)
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("account created", slog.String("username", username))
	return nil
}

// Login returns nil when the password matches, ErrInvalidCredentials when it
// does not and ErrUserNotFound when the username is unknown.
func (s *AccountService) Login(ctx context.Context, username, password string) error {
	if err := requireCredentials(username, password); err != nil {
		return err
	}

	ok, err := s.Credentials.CheckPassword(ctx, username, password)
	if err == nil && !ok {
		err = ErrInvalidCredentials
	}
	record("login", err)
	return err
}

func (s *AccountService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	switch {
	case username == "":
		return &ValidationError{Field: "username", Reason: "required"}
	case oldPassword == "":
		return &ValidationError{Field: "old_password", Reason: "required"}
	case newPassword == "":
		return &ValidationError{Field: "new_password", Reason: "required"}
	}

	ok, err := s.Credentials.CheckPassword(ctx, username, oldPassword)
	if err == nil && !ok {
		err = ErrInvalidCredentials
	}
	if err == nil {
		err = s.Credentials.UpdatePassword(ctx, username, newPassword)
	}
	record("change_password", err)
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password updated", slog.String("username", username))
	return nil
}

func (s *AccountService) CountAccounts(ctx context.Context) (int64, error) {
	return s.Credentials.CountUsers(ctx)
}

func requireCredentials(username, password string) error {
	if username == "" {
		return &ValidationError{Field: "username", Reason: "required"}
	}
	if password == "" {
		return &ValidationError{Field: "password", Reason: "required"}
	}
	return nil
}

func record(operation string, err error) {
	outcome := "ok"
	var storageErr *StorageError
	switch {
	case err == nil:
	case errors.Is(err, ErrDuplicateUser):
		outcome = "duplicate"
	case errors.Is(err, ErrUserNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrInvalidCredentials):
		outcome = "invalid"
	case errors.As(err, &storageErr):
		outcome = "error"
	default:
		outcome = "error"
	}
	metrics.AccountEvents.WithLabelValues(operation, outcome).Inc()
}
