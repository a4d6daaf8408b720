package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
)

type usersRepo struct {
	db dbtx
}

const getUserByUsername = `
SELECT id, username, salt, password_hash, created_at, updated_at
FROM users
WHERE username = $1`

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, getUserByUsername, username).Scan(
		&u.ID,
		&u.Username,
		&u.Salt,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

const createUser = `
INSERT INTO users (id, username, salt, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, createUser,
		u.ID, u.Username, u.Salt, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	return mapConstraint(err)
}

const updateUserPassword = `
UPDATE users
SET salt = $1, password_hash = $2, updated_at = $3
WHERE username = $4`

func (r *usersRepo) UpdatePassword(ctx context.Context, username, salt, passwordHash string) error {
	return mapAffected(r.db.ExecContext(ctx, updateUserPassword,
		salt, passwordHash, time.Now().UTC(), username))
}

const countUsers = `SELECT COUNT(*) FROM users`

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countUsers).Scan(&n)
	return n, err
}
