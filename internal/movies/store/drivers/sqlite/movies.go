package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/store/drivers/sqlite/gen"
)

type moviesRepo struct {
	q *gen.Queries
}

func (r *moviesRepo) CreateMovie(ctx context.Context, m domain.Movie) error {
	err := r.q.CreateMovie(ctx, gen.CreateMovieParams{
		ID:               m.ID,
		TmdbID:           int64(m.TMDBID),
		Name:             m.Name,
		Year:             int64(m.Year),
		Director:         m.Director,
		Genres:           joinGenres(m.Genres),
		OriginalLanguage: m.OriginalLanguage,
		Favorite:         m.Favorite,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	})
	return mapConstraint(err)
}

func (r *moviesRepo) GetMovieByID(ctx context.Context, id string) (domain.Movie, error) {
	row, err := r.q.GetMovieByID(ctx, id)
	if err != nil {
		return domain.Movie{}, mapNotFound(err)
	}
	return mapMovie(row), nil
}

func (r *moviesRepo) GetMovieByName(ctx context.Context, name string) (domain.Movie, error) {
	row, err := r.q.GetMovieByName(ctx, name)
	if err != nil {
		return domain.Movie{}, mapNotFound(err)
	}
	return mapMovie(row), nil
}

func (r *moviesRepo) MarkFavorite(ctx context.Context, id string) error {
	return mapAffected(r.q.MarkMovieFavorite(ctx, gen.MarkMovieFavoriteParams{
		UpdatedAt: time.Now().UTC(),
		ID:        id,
	}))
}

func (r *moviesRepo) ListFavorites(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.q.ListFavoriteMovies(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Movie, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMovie(row))
	}
	return out, nil
}

func (r *moviesRepo) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return mapAffected(r.q.SoftDeleteMovie(ctx, gen.SoftDeleteMovieParams{
		DeletedAt: mapOptionalTime(&now),
		UpdatedAt: now,
		ID:        id,
	}))
}

func (r *moviesRepo) Clear(ctx context.Context) (int64, error) {
	return r.q.DeleteAllMovies(ctx)
}

func (r *moviesRepo) PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.q.PurgeDeletedMovies(ctx, mapOptionalTime(&cutoff))
}
