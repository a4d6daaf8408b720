package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchMoviesSendsKeyAndQuery(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/movie", r.URL.Path)
		require.Equal(t, "secret", r.URL.Query().Get("api_key"))
		require.Equal(t, "Heat", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{"page":1,"total_results":1,"results":[
			{"id":949,"title":"Heat","release_date":"1995-12-15","original_language":"en","genre_ids":[28,80,18]}
		]}`))
	})

	page, err := New(srv.URL, "secret").SearchMovies(context.Background(), "Heat")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	require.Equal(t, 949, page.Results[0].ID)
	require.Equal(t, 1995, page.Results[0].Year())
	require.Equal(t, []string{"Action", "Crime", "Drama"}, GenreNames(page.Results[0].GenreIDs))
}

func TestDiscoverMoviesParams(t *testing.T) {
	tests := []struct {
		name   string
		params DiscoverParams
		key    string
		want   string
	}{
		{"year", DiscoverParams{PrimaryReleaseYear: 1999}, "primary_release_year", "1999"},
		{"language", DiscoverParams{WithOriginalLanguage: "ja"}, "with_original_language", "ja"},
		{"genre", DiscoverParams{WithGenres: 878}, "with_genres", "878"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/discover/movie", r.URL.Path)
				q := r.URL.Query()
				require.Equal(t, tt.want, q.Get(tt.key))
				// Only the one filter plus the key.
				require.Len(t, q, 2)
				_, _ = w.Write([]byte(`{"results":[]}`))
			})

			page, err := New(srv.URL, "k").DiscoverMovies(context.Background(), tt.params)
			require.NoError(t, err)
			require.Empty(t, page.Results)
		})
	}
}

func TestPeopleAndCredits(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/person":
			_, _ = w.Write([]byte(`{"results":[{"id":525,"name":"Christopher Nolan","known_for_department":"Directing"}]}`))
		case "/person/525/movie_credits":
			_, _ = w.Write([]byte(`{"id":525,"crew":[
				{"id":27205,"title":"Inception","release_date":"2010-07-15","original_language":"en","genre_ids":[28],"job":"Director"},
				{"id":27205,"title":"Inception","release_date":"2010-07-15","original_language":"en","genre_ids":[28],"job":"Writer"}
			]}`))
		case "/movie/27205/credits":
			_, _ = w.Write([]byte(`{"id":27205,"crew":[{"name":"Christopher Nolan","job":"Director","department":"Directing"}]}`))
		default:
			http.NotFound(w, r)
		}
	})
	c := New(srv.URL, "k")
	ctx := context.Background()

	people, err := c.SearchPeople(ctx, "Nolan")
	require.NoError(t, err)
	require.Equal(t, 525, people.Results[0].ID)

	pc, err := c.PersonMovieCredits(ctx, 525)
	require.NoError(t, err)
	require.Len(t, pc.Crew, 2)
	require.Equal(t, "Inception", pc.Crew[0].Title)
	require.Equal(t, "Director", pc.Crew[0].Job)

	mc, err := c.MovieCredits(ctx, 27205)
	require.NoError(t, err)
	require.Equal(t, "Christopher Nolan", mc.Crew[0].Name)
}

func TestAPIError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key","success":false}`))
	})

	var hooked []string
	c := New(srv.URL, "bad", WithRequestHook(func(endpoint string, err error) {
		hooked = append(hooked, endpoint)
		require.Error(t, err)
	}))

	_, err := c.SearchMovies(context.Background(), "x")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus)
	require.Equal(t, 7, apiErr.StatusCode)
	require.Contains(t, apiErr.Error(), "Invalid API key")
	require.False(t, apiErr.NotFound())
	require.Equal(t, []string{"/search/movie"}, hooked)
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := New(srv.URL, "k").SearchMovies(context.Background(), "x")
	require.ErrorContains(t, err, "failed to decode response")
}

func TestRateLimitThrottles(t *testing.T) {
	var mu sync.Mutex
	var calls int
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	c := New(srv.URL, "k", WithRateLimit(1, 1))
	ctx := context.Background()

	_, err := c.SearchMovies(ctx, "first")
	require.NoError(t, err)

	// The bucket is empty; a short deadline cannot wait a full second.
	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = c.SearchMovies(short, "second")
	require.ErrorContains(t, err, "rate limit wait")
	require.Equal(t, 1, calls)
}

func TestYear(t *testing.T) {
	require.Equal(t, 2010, MovieResult{ReleaseDate: "2010-07-15"}.Year())
	require.Equal(t, 1977, MovieResult{ReleaseDate: "1977"}.Year())
	require.Zero(t, MovieResult{}.Year())
	require.Zero(t, MovieResult{ReleaseDate: "soon"}.Year())
}

func TestTransportErrorHidesKey(t *testing.T) {
	_, err := New("http://127.0.0.1:1", "SUPERSECRETKEY").SearchMovies(context.Background(), "Heat")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "SUPERSECRETKEY")
	require.False(t, strings.Contains(err.Error(), "api_key"), "error: %v", err)
	require.Contains(t, err.Error(), "/search/movie")
}
