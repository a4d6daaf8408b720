package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
)

type moviesRepo struct {
	db dbtx
}

const movieColumns = `id, tmdb_id, name, year, director, genres, original_language,
       favorite, deleted, deleted_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (domain.Movie, error) {
	var (
		m         domain.Movie
		genres    string
		deletedAt sql.NullTime
	)
	err := row.Scan(
		&m.ID,
		&m.TMDBID,
		&m.Name,
		&m.Year,
		&m.Director,
		&genres,
		&m.OriginalLanguage,
		&m.Favorite,
		&m.Deleted,
		&deletedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.Movie{}, err
	}

	m.Genres = splitGenres(genres)
	if deletedAt.Valid {
		t := deletedAt.Time
		m.DeletedAt = &t
	}
	return m, nil
}

const createMovie = `
INSERT INTO movies (
    id, tmdb_id, name, year, director, genres, original_language,
    favorite, deleted, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9, $10)`

func (r *moviesRepo) CreateMovie(ctx context.Context, m domain.Movie) error {
	_, err := r.db.ExecContext(ctx, createMovie,
		m.ID, m.TMDBID, m.Name, m.Year, m.Director, strings.Join(m.Genres, ","),
		m.OriginalLanguage, m.Favorite, m.CreatedAt, m.UpdatedAt)
	return mapConstraint(err)
}

const getMovieByID = `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

func (r *moviesRepo) GetMovieByID(ctx context.Context, id string) (domain.Movie, error) {
	m, err := scanMovie(r.db.QueryRowContext(ctx, getMovieByID, id))
	return m, mapNotFound(err)
}

const getMovieByName = `SELECT ` + movieColumns + ` FROM movies WHERE name = $1 AND NOT deleted`

func (r *moviesRepo) GetMovieByName(ctx context.Context, name string) (domain.Movie, error) {
	m, err := scanMovie(r.db.QueryRowContext(ctx, getMovieByName, name))
	return m, mapNotFound(err)
}

const markMovieFavorite = `
UPDATE movies SET favorite = TRUE, updated_at = $1
WHERE id = $2 AND NOT deleted`

func (r *moviesRepo) MarkFavorite(ctx context.Context, id string) error {
	return mapAffected(r.db.ExecContext(ctx, markMovieFavorite, time.Now().UTC(), id))
}

const listFavoriteMovies = `SELECT ` + movieColumns + `
FROM movies
WHERE favorite AND NOT deleted
ORDER BY name`

func (r *moviesRepo) ListFavorites(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx, listFavoriteMovies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

const softDeleteMovie = `
UPDATE movies SET deleted = TRUE, deleted_at = $1, updated_at = $1
WHERE id = $2 AND NOT deleted`

func (r *moviesRepo) SoftDelete(ctx context.Context, id string) error {
	return mapAffected(r.db.ExecContext(ctx, softDeleteMovie, time.Now().UTC(), id))
}

const deleteAllMovies = `DELETE FROM movies`

func (r *moviesRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteAllMovies)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const purgeDeletedMovies = `
DELETE FROM movies
WHERE deleted AND NOT favorite AND deleted_at < $1`

func (r *moviesRepo) PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, purgeDeletedMovies, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
