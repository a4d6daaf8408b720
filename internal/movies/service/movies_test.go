package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/pkg/idx"
	"github.com/aussiebroadwan/movies/pkg/tmdb"
	"github.com/stretchr/testify/require"
)

func newMovieService(t *testing.T, db *fakeTMDB) *MovieService {
	t.Helper()
	return &MovieService{
		Store: newTestStore(t),
		TMDB:  db,
		Rand:  func(int) int { return 0 },
	}
}

func catalogDB() *fakeTMDB {
	return &fakeTMDB{
		search: map[string][]tmdb.MovieResult{
			"Heat": {heat, thief},
		},
		discover: func(p tmdb.DiscoverParams) []tmdb.MovieResult {
			switch {
			case p.PrimaryReleaseYear == 1988, p.WithOriginalLanguage == "ja", p.WithGenres == 16:
				return []tmdb.MovieResult{akira}
			case p.WithGenres == 80:
				return []tmdb.MovieResult{heat, thief}
			}
			return nil
		},
		people: map[string][]tmdb.Person{
			"mann": {
				{ID: 2, Name: "Aimee Mann", KnownForDepartment: "Sound"},
				{ID: 1, Name: "Michael Mann", KnownForDepartment: "Directing"},
			},
			"Bob Actor": {{ID: 3, Name: "Bob Actor", KnownForDepartment: "Acting"}},
		},
		filmogr: map[int][]tmdb.CrewCredit{
			1: {
				{MovieResult: heat, Job: "Director"},
				{MovieResult: thief, Job: "Writer"},
			},
			3: {{MovieResult: thief, Job: "Stunts"}},
		},
		credits: map[int][]tmdb.CrewCredit{
			949:   director("Michael Mann"),
			11524: director("Michael Mann"),
			149:   director("Katsuhiro Otomo"),
		},
	}
}

func TestRandomMovieFilters(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		filter   domain.MovieFilter
		pick     int
		want     string
		director string
		genres   []string
	}{
		{"by name", domain.MovieFilter{Kind: domain.FilterByName, Name: "Heat"}, 1, "Thief", "Michael Mann", []string{"Crime", "Drama"}},
		{"by year", domain.MovieFilter{Kind: domain.FilterByYear, Year: 1988}, 0, "Akira", "Katsuhiro Otomo", []string{"Animation", "Science Fiction"}},
		{"by language", domain.MovieFilter{Kind: domain.FilterByLanguage, Language: "ja"}, 0, "Akira", "Katsuhiro Otomo", []string{"Animation", "Science Fiction"}},
		{"by genre", domain.MovieFilter{Kind: domain.FilterByGenre, GenreID: 80}, 0, "Heat", "Michael Mann", []string{"Action", "Crime", "Drama"}},
		{"by director", domain.MovieFilter{Kind: domain.FilterByDirector, Director: "mann"}, 0, "Heat", "Michael Mann", []string{"Action", "Crime", "Drama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newMovieService(t, catalogDB())
			svc.Rand = func(n int) int {
				require.Greater(t, n, tt.pick)
				return tt.pick
			}

			res, err := svc.RandomMovie(ctx, tt.filter, LookupOptions{})
			require.NoError(t, err)
			require.False(t, res.Saved)
			require.Empty(t, res.Movie.ID)
			require.Equal(t, tt.want, res.Movie.Name)
			require.Equal(t, tt.director, res.Movie.Director)
			require.Equal(t, tt.genres, res.Movie.Genres)
			require.Greater(t, res.Movie.Year, domain.MinMovieYear)
		})
	}
}

func TestRandomMovieByDirectorUsesFilmography(t *testing.T) {
	db := catalogDB()
	svc := newMovieService(t, db)

	res, err := svc.RandomMovie(context.Background(),
		domain.MovieFilter{Kind: domain.FilterByDirector, Director: "mann"}, LookupOptions{})
	require.NoError(t, err)
	require.Equal(t, "Heat", res.Movie.Name)
	require.Equal(t, []string{"SearchPeople", "PersonMovieCredits"}, db.calls)
}

func TestRandomMovieErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid filters never reach tmdb", func(t *testing.T) {
		db := catalogDB()
		svc := newMovieService(t, db)

		for _, f := range []domain.MovieFilter{
			{Kind: domain.FilterByName, Name: "  "},
			{Kind: domain.FilterByYear, Year: 1899},
			{Kind: domain.FilterByLanguage},
			{Kind: domain.FilterByDirector},
			{Kind: domain.FilterByGenre, GenreID: 0},
			{Kind: "actor"},
		} {
			_, err := svc.RandomMovie(ctx, f, LookupOptions{})
			require.ErrorIs(t, err, ErrInvalidFilter, "filter %+v", f)
		}
		require.Empty(t, db.calls)
	})

	t.Run("no results", func(t *testing.T) {
		svc := newMovieService(t, catalogDB())
		_, err := svc.RandomMovie(ctx, domain.MovieFilter{Kind: domain.FilterByYear, Year: 1901}, LookupOptions{})
		require.ErrorIs(t, err, ErrNoMoviesFound)
	})

	t.Run("unknown director", func(t *testing.T) {
		svc := newMovieService(t, catalogDB())
		_, err := svc.RandomMovie(ctx, domain.MovieFilter{Kind: domain.FilterByDirector, Director: "nobody"}, LookupOptions{})
		require.ErrorIs(t, err, ErrDirectorNotFound)
	})

	t.Run("person without directing credits", func(t *testing.T) {
		svc := newMovieService(t, catalogDB())
		_, err := svc.RandomMovie(ctx, domain.MovieFilter{Kind: domain.FilterByDirector, Director: "Bob Actor"}, LookupOptions{})
		require.ErrorIs(t, err, ErrNoMoviesFound)
	})

	t.Run("upstream failure", func(t *testing.T) {
		db := catalogDB()
		db.err = errors.New("connection refused")
		svc := newMovieService(t, db)

		_, err := svc.RandomMovie(ctx, domain.MovieFilter{Kind: domain.FilterByName, Name: "Heat"}, LookupOptions{})
		require.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("credits failure falls back to unknown director", func(t *testing.T) {
		db := catalogDB()
		db.creditsErr = errors.New("timeout")
		svc := newMovieService(t, db)

		res, err := svc.RandomMovie(ctx, domain.MovieFilter{Kind: domain.FilterByName, Name: "Heat"}, LookupOptions{})
		require.NoError(t, err)
		require.Equal(t, domain.UnknownDirector, res.Movie.Director)
	})
}

func TestRandomMovieSaveAndFavorite(t *testing.T) {
	ctx := context.Background()
	svc := newMovieService(t, catalogDB())
	byName := domain.MovieFilter{Kind: domain.FilterByName, Name: "Heat"}

	saved, err := svc.RandomMovie(ctx, byName, LookupOptions{Save: true})
	require.NoError(t, err)
	require.True(t, saved.Saved)
	require.NotEmpty(t, saved.Movie.ID)
	require.False(t, saved.Movie.Favorite)

	favs, err := svc.ListFavorites(ctx)
	require.NoError(t, err)
	require.Empty(t, favs)

	// Same movie again as a favorite reuses the stored row.
	again, err := svc.RandomMovie(ctx, byName, LookupOptions{Favorite: true})
	require.NoError(t, err)
	require.True(t, again.Saved)
	require.Equal(t, saved.Movie.ID, again.Movie.ID)
	require.True(t, again.Movie.Favorite)

	favs, err = svc.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	require.Equal(t, "Heat", favs[0].Name)

	// Once soft-deleted the name cannot be stored again.
	require.NoError(t, svc.DeleteMovie(ctx, saved.Movie.ID))
	res, err := svc.RandomMovie(ctx, byName, LookupOptions{Save: true})
	require.NoError(t, err)
	require.False(t, res.Saved)
	require.Equal(t, "Heat", res.Movie.Name)
}

func TestRandomMovieSkipsInvalidForStorage(t *testing.T) {
	db := catalogDB()
	db.search["Roundhay"] = []tmdb.MovieResult{
		{ID: 1, Title: "Roundhay Garden Scene", ReleaseDate: "1888-10-14", OriginalLanguage: "en", GenreIDs: []int{99}},
	}
	svc := newMovieService(t, db)

	res, err := svc.RandomMovie(context.Background(),
		domain.MovieFilter{Kind: domain.FilterByName, Name: "Roundhay"}, LookupOptions{Save: true})
	require.NoError(t, err)
	require.False(t, res.Saved)
	require.Equal(t, 1888, res.Movie.Year)
}

func TestSaveMovie(t *testing.T) {
	ctx := context.Background()
	svc := newMovieService(t, catalogDB())

	m := domain.Movie{Name: "Ali", Year: 2001, Director: "Michael Mann", Genres: []string{"Drama"}, OriginalLanguage: "en"}
	saved, err := svc.SaveMovie(ctx, m)
	require.NoError(t, err)
	_, err = idx.Parse(saved.ID)
	require.NoError(t, err)

	_, err = svc.SaveMovie(ctx, m)
	require.ErrorIs(t, err, ErrMovieExists)

	m.Name = "Untitled"
	m.Genres = nil
	_, err = svc.SaveMovie(ctx, m)
	require.ErrorIs(t, err, domain.ErrInvalidMovie)
}

func TestCatalogOperations(t *testing.T) {
	ctx := context.Background()
	svc := newMovieService(t, catalogDB())

	ali, err := svc.SaveMovie(ctx, domain.Movie{Name: "Ali", Year: 2001, Genres: []string{"Drama"}, OriginalLanguage: "en"})
	require.NoError(t, err)

	t.Run("mark favorite", func(t *testing.T) {
		_, err := svc.MarkFavorite(ctx, "Collateral")
		require.ErrorIs(t, err, ErrMovieNotFound)

		var verr *ValidationError
		_, err = svc.MarkFavorite(ctx, "")
		require.ErrorAs(t, err, &verr)

		m, err := svc.MarkFavorite(ctx, "Ali")
		require.NoError(t, err)
		require.True(t, m.Favorite)

		// Marking twice is a no-op.
		_, err = svc.MarkFavorite(ctx, "Ali")
		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteMovie(ctx, "not-an-id"), ErrMovieNotFound)
		require.ErrorIs(t, svc.DeleteMovie(ctx, idx.New().String()), ErrMovieNotFound)

		// Ids are matched in canonical form.
		require.NoError(t, svc.DeleteMovie(ctx, " "+strings.ToLower(ali.ID)+" "))
		require.ErrorIs(t, svc.DeleteMovie(ctx, ali.ID), ErrMovieAlreadyDeleted)

		favs, err := svc.ListFavorites(ctx)
		require.NoError(t, err)
		require.Empty(t, favs)
	})

	t.Run("clear", func(t *testing.T) {
		_, err := svc.SaveMovie(ctx, domain.Movie{Name: "Heat", Year: 1995, Genres: []string{"Crime"}, OriginalLanguage: "en"})
		require.NoError(t, err)

		n, err := svc.ClearCatalog(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)
	})
}

func TestRandomMovieAgainstTMDBClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/discover/movie":
			require.Equal(t, "878", r.URL.Query().Get("with_genres"))
			_, _ = w.Write([]byte(`{"results":[{"id":78,"title":"Blade Runner","release_date":"1982-06-25","original_language":"en","genre_ids":[878,18]}]}`))
		case "/movie/78/credits":
			_, _ = w.Write([]byte(`{"crew":[{"name":"Ridley Scott","job":"Director"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := &MovieService{Store: newTestStore(t), TMDB: tmdb.New(srv.URL, "k")}
	res, err := svc.RandomMovie(context.Background(),
		domain.MovieFilter{Kind: domain.FilterByGenre, GenreID: 878}, LookupOptions{Favorite: true})
	require.NoError(t, err)
	require.True(t, res.Saved)
	require.Equal(t, "Blade Runner", res.Movie.Name)
	require.Equal(t, "Ridley Scott", res.Movie.Director)
	require.Equal(t, []string{"Science Fiction", "Drama"}, res.Movie.Genres)
}
