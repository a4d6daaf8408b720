package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/pkg/cryptox"
	"github.com/aussiebroadwan/movies/pkg/idx"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

// CredentialService owns salted password hashing and the users table. It does
// not validate input or check the old password on rotation; AccountService
// does that before calling in.
type CredentialService struct {
	Store store.Store

	// RotateSalt draws a fresh salt on every password change instead of
	// keeping the one generated at creation.
	RotateSalt bool
}

// CreateUser stores a new user with a fresh salt. Uniqueness is left to the
// store's unique index so concurrent creates for one username have a single
// winner.
func (s *CredentialService) CreateUser(ctx context.Context, username, password string) (domain.User, error) {
	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return domain.User{}, &StorageError{Op: "create user", Err: err}
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Salt:         salt,
		PasswordHash: cryptox.HashPassword(salt, password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fmt.Errorf("%w: %s", ErrDuplicateUser, username)
		}
		slogx.FromContext(ctx).Error("failed to create user",
			slog.String("username", username), slogx.Err(err))
		return domain.User{}, &StorageError{Op: "create user", Err: err}
	}

	return u, nil
}

// CheckPassword reports whether password matches the stored hash for username.
func (s *CredentialService) CheckPassword(ctx context.Context, username, password string) (bool, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, fmt.Errorf("%w: %s", ErrUserNotFound, username)
		}
		return false, &StorageError{Op: "check password", Err: err}
	}

	return cryptox.VerifyPassword(u.Salt, password, u.PasswordHash), nil
}

// UpdatePassword re-derives the hash for newPassword. The salt lookup and the
// write share one transaction.
func (s *CredentialService) UpdatePassword(ctx context.Context, username, newPassword string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByUsername(ctx, username)
		if err != nil {
			return err
		}

		salt := u.Salt
		if s.RotateSalt {
			if salt, err = cryptox.GenerateSalt(); err != nil {
				return err
			}
		}

		return tx.Users().UpdatePassword(ctx, username, salt, cryptox.HashPassword(salt, newPassword))
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrUserNotFound, username)
	default:
		slogx.FromContext(ctx).Error("failed to update password",
			slog.String("username", username), slogx.Err(err))
		return &StorageError{Op: "update password", Err: err}
	}
}

// CountUsers returns the number of registered accounts.
func (s *CredentialService) CountUsers(ctx context.Context) (int64, error) {
	n, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return 0, &StorageError{Op: "count users", Err: err}
	}
	return n, nil
}
