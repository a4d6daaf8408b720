package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Username:     u.Username,
		Salt:         u.Salt,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	})
	return mapConstraint(err)
}

func (r *usersRepo) UpdatePassword(ctx context.Context, username, salt, passwordHash string) error {
	return mapAffected(r.q.UpdateUserPassword(ctx, gen.UpdateUserPasswordParams{
		Salt:         salt,
		PasswordHash: passwordHash,
		UpdatedAt:    time.Now().UTC(),
		Username:     username,
	}))
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.q.CountUsers(ctx)
}
