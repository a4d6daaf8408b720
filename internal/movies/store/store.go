package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories are reached through methods so a Tx can hand
// out the same repositories bound to its transaction, and a Tx refuses to
// open another one.
type Store interface {
	Users() Users
	Movies() Movies

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. The transaction commits when
	// fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByUsername returns ErrNotFound when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the caller via ULID).
	// A taken username yields ErrAlreadyExists from the unique index.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePassword replaces salt and password_hash and bumps updated_at.
	// Returns ErrNotFound when no row matched.
	UpdatePassword(ctx context.Context, username, salt, passwordHash string) error

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}

type Movies interface {
	// CreateMovie inserts a movie. A name already in the catalog yields
	// ErrAlreadyExists.
	CreateMovie(ctx context.Context, m domain.Movie) error

	// GetMovieByID returns a movie including soft-deleted ones.
	GetMovieByID(ctx context.Context, id string) (domain.Movie, error)

	// GetMovieByName returns a movie that has not been soft-deleted.
	GetMovieByName(ctx context.Context, name string) (domain.Movie, error)

	// MarkFavorite flags a non-deleted movie as favorite.
	MarkFavorite(ctx context.Context, id string) error

	// ListFavorites returns favorite, non-deleted movies ordered by name.
	ListFavorites(ctx context.Context) ([]domain.Movie, error)

	// SoftDelete flags a movie as deleted. Returns ErrNotFound when no
	// non-deleted movie has the id.
	SoftDelete(ctx context.Context, id string) error

	// Clear removes every movie from the catalog.
	Clear(ctx context.Context) (int64, error)

	// PurgeDeleted removes non-favorite movies soft-deleted before cutoff.
	PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error)
}
