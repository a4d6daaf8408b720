package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/movies/internal/movies/store/drivers/sqlite"
	"github.com/aussiebroadwan/movies/pkg/tmdb"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "movies.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// fakeTMDB is an in-memory MovieDatabase. Calls are recorded by method name.
type fakeTMDB struct {
	search   map[string][]tmdb.MovieResult
	discover func(tmdb.DiscoverParams) []tmdb.MovieResult
	people   map[string][]tmdb.Person
	filmogr  map[int][]tmdb.CrewCredit
	credits  map[int][]tmdb.CrewCredit
	err      error

	// creditsErr fails only MovieCredits.
	creditsErr error
	calls      []string
}

func (f *fakeTMDB) SearchMovies(_ context.Context, q string) (tmdb.MoviePage, error) {
	f.calls = append(f.calls, "SearchMovies")
	if f.err != nil {
		return tmdb.MoviePage{}, f.err
	}
	return tmdb.MoviePage{Results: f.search[q]}, nil
}

func (f *fakeTMDB) DiscoverMovies(_ context.Context, p tmdb.DiscoverParams) (tmdb.MoviePage, error) {
	f.calls = append(f.calls, "DiscoverMovies")
	if f.err != nil {
		return tmdb.MoviePage{}, f.err
	}
	if f.discover == nil {
		return tmdb.MoviePage{}, nil
	}
	return tmdb.MoviePage{Results: f.discover(p)}, nil
}

func (f *fakeTMDB) SearchPeople(_ context.Context, q string) (tmdb.PersonPage, error) {
	f.calls = append(f.calls, "SearchPeople")
	if f.err != nil {
		return tmdb.PersonPage{}, f.err
	}
	return tmdb.PersonPage{Results: f.people[q]}, nil
}

func (f *fakeTMDB) PersonMovieCredits(_ context.Context, id int) (tmdb.PersonCredits, error) {
	f.calls = append(f.calls, "PersonMovieCredits")
	if f.err != nil {
		return tmdb.PersonCredits{}, f.err
	}
	return tmdb.PersonCredits{ID: id, Crew: f.filmogr[id]}, nil
}

func (f *fakeTMDB) MovieCredits(_ context.Context, id int) (tmdb.MovieCredits, error) {
	f.calls = append(f.calls, "MovieCredits")
	if f.err != nil {
		return tmdb.MovieCredits{}, f.err
	}
	if f.creditsErr != nil {
		return tmdb.MovieCredits{}, f.creditsErr
	}
	return tmdb.MovieCredits{ID: id, Crew: f.credits[id]}, nil
}

var (
	heat  = tmdb.MovieResult{ID: 949, Title: "Heat", ReleaseDate: "1995-12-15", OriginalLanguage: "en", GenreIDs: []int{28, 80, 18}}
	thief = tmdb.MovieResult{ID: 11524, Title: "Thief", ReleaseDate: "1981-03-27", OriginalLanguage: "en", GenreIDs: []int{80, 18}}
	akira = tmdb.MovieResult{ID: 149, Title: "Akira", ReleaseDate: "1988-07-16", OriginalLanguage: "ja", GenreIDs: []int{16, 878}}
)

func director(name string) []tmdb.CrewCredit {
	return []tmdb.CrewCredit{
		{Name: "Someone Else", Job: "Producer"},
		{Name: name, Job: "Director"},
	}
}
