package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/pkg/idx"
	"github.com/aussiebroadwan/movies/pkg/slogx"
	"github.com/aussiebroadwan/movies/pkg/tmdb"
)

// MovieDatabase is the subset of the TMDB client the movie service needs.
type MovieDatabase interface {
	SearchMovies(ctx context.Context, query string) (tmdb.MoviePage, error)
	DiscoverMovies(ctx context.Context, p tmdb.DiscoverParams) (tmdb.MoviePage, error)
	SearchPeople(ctx context.Context, query string) (tmdb.PersonPage, error)
	PersonMovieCredits(ctx context.Context, personID int) (tmdb.PersonCredits, error)
	MovieCredits(ctx context.Context, movieID int) (tmdb.MovieCredits, error)
}

// LookupOptions controls whether a looked up movie is written to the catalog.
// Favorite implies Save.
type LookupOptions struct {
	Save     bool
	Favorite bool
}

type LookupResult struct {
	Movie domain.Movie
	Saved bool
}

// MovieService picks random movies from TMDB and keeps the local catalog of
// saved and favorite movies.
type MovieService struct {
	Store store.Store
	TMDB  MovieDatabase

	// Rand returns a value in [0, n). Defaults to math/rand/v2.IntN.
	Rand func(n int) int
}

// RandomMovie runs the lookup selected by f.Kind and returns one matching
// movie chosen uniformly at random.
func (s *MovieService) RandomMovie(ctx context.Context, f domain.MovieFilter, opts LookupOptions) (LookupResult, error) {
	if err := validateFilter(f); err != nil {
		return LookupResult{}, err
	}

	var (
		m   domain.Movie
		err error
	)
	if f.Kind == domain.FilterByDirector {
		m, err = s.randomByDirector(ctx, f.Director)
	} else {
		m, err = s.randomFromPage(ctx, f)
	}
	if err != nil {
		return LookupResult{}, err
	}

	res := LookupResult{Movie: m}
	if !opts.Save && !opts.Favorite {
		return res, nil
	}
	return s.persist(ctx, m, opts.Favorite)
}

func validateFilter(f domain.MovieFilter) error {
	switch f.Kind {
	case domain.FilterByName:
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("%w: name is required", ErrInvalidFilter)
		}
	case domain.FilterByYear:
		if f.Year < domain.MinMovieYear {
			return fmt.Errorf("%w: year must be %d or later", ErrInvalidFilter, domain.MinMovieYear)
		}
	case domain.FilterByLanguage:
		if strings.TrimSpace(f.Language) == "" {
			return fmt.Errorf("%w: language code is required", ErrInvalidFilter)
		}
	case domain.FilterByDirector:
		if strings.TrimSpace(f.Director) == "" {
			return fmt.Errorf("%w: director is required", ErrInvalidFilter)
		}
	case domain.FilterByGenre:
		if f.GenreID <= 0 {
			return fmt.Errorf("%w: genre id must be positive", ErrInvalidFilter)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidFilter, f.Kind)
	}
	return nil
}

func (s *MovieService) randomFromPage(ctx context.Context, f domain.MovieFilter) (domain.Movie, error) {
	var (
		page tmdb.MoviePage
		err  error
	)
	switch f.Kind {
	case domain.FilterByName:
		page, err = s.TMDB.SearchMovies(ctx, f.Name)
	case domain.FilterByYear:
		page, err = s.TMDB.DiscoverMovies(ctx, tmdb.DiscoverParams{PrimaryReleaseYear: f.Year})
	case domain.FilterByLanguage:
		page, err = s.TMDB.DiscoverMovies(ctx, tmdb.DiscoverParams{WithOriginalLanguage: f.Language})
	case domain.FilterByGenre:
		page, err = s.TMDB.DiscoverMovies(ctx, tmdb.DiscoverParams{WithGenres: f.GenreID})
	}
	if err != nil {
		return domain.Movie{}, upstream(ctx, err)
	}
	if len(page.Results) == 0 {
		return domain.Movie{}, fmt.Errorf("%w: %s", ErrNoMoviesFound, describe(f))
	}

	pick := page.Results[s.intn(len(page.Results))]
	m := fromResult(pick)
	m.Director = s.resolveDirector(ctx, pick.ID)
	return m, nil
}

func (s *MovieService) randomByDirector(ctx context.Context, name string) (domain.Movie, error) {
	people, err := s.TMDB.SearchPeople(ctx, name)
	if err != nil {
		return domain.Movie{}, upstream(ctx, err)
	}
	if len(people.Results) == 0 {
		return domain.Movie{}, fmt.Errorf("%w: %s", ErrDirectorNotFound, name)
	}

	person := people.Results[0]
	for _, p := range people.Results {
		if p.KnownForDepartment == "Directing" {
			person = p
			break
		}
	}

	credits, err := s.TMDB.PersonMovieCredits(ctx, person.ID)
	if err != nil {
		return domain.Movie{}, upstream(ctx, err)
	}

	var directed []tmdb.MovieResult
	for _, c := range credits.Crew {
		if c.Job == "Director" {
			directed = append(directed, c.MovieResult)
		}
	}
	if len(directed) == 0 {
		return domain.Movie{}, fmt.Errorf("%w: director %s", ErrNoMoviesFound, name)
	}

	m := fromResult(directed[s.intn(len(directed))])
	m.Director = person.Name
	return m, nil
}

// resolveDirector returns the first directing credit of a movie, or
// domain.UnknownDirector. A failed credits call does not fail the lookup.
func (s *MovieService) resolveDirector(ctx context.Context, movieID int) string {
	credits, err := s.TMDB.MovieCredits(ctx, movieID)
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to resolve director",
			slog.Int("tmdb_id", movieID), slogx.Err(err))
		return domain.UnknownDirector
	}
	for _, c := range credits.Crew {
		if c.Job == "Director" && c.Name != "" {
			return c.Name
		}
	}
	return domain.UnknownDirector
}

func (s *MovieService) persist(ctx context.Context, m domain.Movie, favorite bool) (LookupResult, error) {
	m.Favorite = favorite
	saved, err := s.SaveMovie(ctx, m)
	switch {
	case err == nil:
		return LookupResult{Movie: saved, Saved: true}, nil
	case errors.Is(err, domain.ErrInvalidMovie):
		slogx.FromContext(ctx).Warn("movie not saved", slog.String("name", m.Name), slogx.Err(err))
		return LookupResult{Movie: m}, nil
	case !errors.Is(err, ErrMovieExists):
		return LookupResult{}, err
	}

	existing, err := s.Store.Movies().GetMovieByName(ctx, m.Name)
	if errors.Is(err, store.ErrNotFound) {
		// The name belongs to a soft-deleted movie.
		return LookupResult{Movie: m}, nil
	}
	if err != nil {
		return LookupResult{}, &StorageError{Op: "get movie", Err: err}
	}

	if favorite && !existing.Favorite {
		if err := s.Store.Movies().MarkFavorite(ctx, existing.ID); err != nil {
			return LookupResult{}, &StorageError{Op: "mark favorite", Err: err}
		}
		existing.Favorite = true
	}
	return LookupResult{Movie: existing, Saved: true}, nil
}

// SaveMovie validates m and inserts it with a new id.
func (s *MovieService) SaveMovie(ctx context.Context, m domain.Movie) (domain.Movie, error) {
	if err := m.Validate(); err != nil {
		return domain.Movie{}, err
	}

	now := time.Now().UTC()
	m.ID = idx.New().String()
	m.Deleted = false
	m.DeletedAt = nil
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := s.Store.Movies().CreateMovie(ctx, m); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Movie{}, fmt.Errorf("%w: %s", ErrMovieExists, m.Name)
		}
		return domain.Movie{}, &StorageError{Op: "create movie", Err: err}
	}

	slogx.FromContext(ctx).Info("movie saved", slog.String("id", m.ID), slog.String("name", m.Name))
	return m, nil
}

// MarkFavorite flags the stored movie called name as a favorite.
func (s *MovieService) MarkFavorite(ctx context.Context, name string) (domain.Movie, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Movie{}, &ValidationError{Field: "name", Reason: "required"}
	}

	m, err := s.Store.Movies().GetMovieByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, name)
		}
		return domain.Movie{}, &StorageError{Op: "get movie", Err: err}
	}
	if m.Favorite {
		return m, nil
	}

	if err := s.Store.Movies().MarkFavorite(ctx, m.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, name)
		}
		return domain.Movie{}, &StorageError{Op: "mark favorite", Err: err}
	}
	m.Favorite = true
	return m, nil
}

func (s *MovieService) ListFavorites(ctx context.Context) ([]domain.Movie, error) {
	favs, err := s.Store.Movies().ListFavorites(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list favorites", Err: err}
	}
	return favs, nil
}

// DeleteMovie soft deletes a movie. Deleting twice yields
// ErrMovieAlreadyDeleted rather than ErrMovieNotFound.
func (s *MovieService) DeleteMovie(ctx context.Context, id string) error {
	parsed, err := idx.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMovieNotFound, id)
	}
	id = parsed.String()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := tx.Movies().GetMovieByID(ctx, id)
		if err != nil {
			return err
		}
		if m.Deleted {
			return ErrMovieAlreadyDeleted
		}
		return tx.Movies().SoftDelete(ctx, id)
	})

	switch {
	case err == nil:
		slogx.FromContext(ctx).Info("movie deleted", slog.String("id", id))
		return nil
	case errors.Is(err, ErrMovieAlreadyDeleted):
		return fmt.Errorf("%w: %s", ErrMovieAlreadyDeleted, id)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrMovieNotFound, id)
	default:
		return &StorageError{Op: "delete movie", Err: err}
	}
}

// ClearCatalog removes every movie, favorites included.
func (s *MovieService) ClearCatalog(ctx context.Context) (int64, error) {
	n, err := s.Store.Movies().Clear(ctx)
	if err != nil {
		return 0, &StorageError{Op: "clear catalog", Err: err}
	}
	slogx.FromContext(ctx).Info("catalog cleared", slog.Int64("removed", n))
	return n, nil
}

func (s *MovieService) intn(n int) int {
	if s.Rand != nil {
		return s.Rand(n)
	}
	return rand.IntN(n)
}

func fromResult(r tmdb.MovieResult) domain.Movie {
	return domain.Movie{
		TMDBID:           r.ID,
		Name:             r.Title,
		Year:             r.Year(),
		Director:         domain.UnknownDirector,
		Genres:           tmdb.GenreNames(r.GenreIDs),
		OriginalLanguage: r.OriginalLanguage,
	}
}

func upstream(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	slogx.FromContext(ctx).Error("movie database request failed", slogx.Err(err))
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func describe(f domain.MovieFilter) string {
	switch f.Kind {
	case domain.FilterByName:
		return "name " + f.Name
	case domain.FilterByYear:
		return fmt.Sprintf("year %d", f.Year)
	case domain.FilterByLanguage:
		return "language " + f.Language
	case domain.FilterByGenre:
		return fmt.Sprintf("genre %d", f.GenreID)
	}
	return string(f.Kind)
}
