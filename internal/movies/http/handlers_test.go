package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/internal/movies/store/drivers/sqlite"
	"github.com/aussiebroadwan/movies/pkg/sdk"
	"github.com/aussiebroadwan/movies/pkg/tmdb"
	"github.com/stretchr/testify/require"
)

// fakeTMDBServer answers the handful of TMDB routes the movie service calls.
func fakeTMDBServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch r.URL.Path {
		case "/search/movie":
			if q.Get("query") == "Heat" {
				_, _ = w.Write([]byte(`{"results":[{"id":949,"title":"Heat","release_date":"1995-12-15","original_language":"en","genre_ids":[28,80]}]}`))
				return
			}
			_, _ = w.Write([]byte(`{"results":[]}`))
		case "/discover/movie":
			if q.Get("primary_release_year") == "1901" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{"results":[{"id":149,"title":"Akira","release_date":"1988-07-16","original_language":"ja","genre_ids":[16,878]}]}`))
		case "/search/person":
			_, _ = w.Write([]byte(`{"results":[]}`))
		case "/movie/949/credits":
			_, _ = w.Write([]byte(`{"crew":[{"name":"Michael Mann","job":"Director"}]}`))
		case "/movie/149/credits":
			_, _ = w.Write([]byte(`{"crew":[{"name":"Katsuhiro Otomo","job":"Director"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T) (*httptest.Server, *sdk.Client) {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "movies.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	upstream := fakeTMDBServer(t)

	router := NewRouter("test", st, slog.Default())
	router.AccountService = &service.AccountService{Credentials: &service.CredentialService{Store: st}}
	router.MovieService = &service.MovieService{
		Store: st,
		TMDB:  tmdb.New(upstream.URL, "key"),
		Rand:  func(int) int { return 0 },
	}
	router.TMDBConfigured = true
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, sdk.New(srv.URL)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var apiErr *sdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *sdk.APIError, got %v", err)
	return apiErr.StatusCode
}

func TestAccountEndpoints(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, client.CreateAccount(ctx, "alice", "pw1"))
	require.Equal(t, http.StatusBadRequest, statusOf(t, client.CreateAccount(ctx, "alice", "pw2")))

	require.NoError(t, client.Login(ctx, "alice", "pw1"))
	require.Equal(t, http.StatusUnauthorized, statusOf(t, client.Login(ctx, "alice", "pw2")))
	require.Equal(t, http.StatusNotFound, statusOf(t, client.Login(ctx, "bob", "pw1")))

	err := client.UpdatePassword(ctx, sdk.UpdatePasswordRequest{Username: "alice", OldPassword: "nope", NewPassword: "pw2"})
	require.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	err = client.UpdatePassword(ctx, sdk.UpdatePasswordRequest{Username: "bob", OldPassword: "a", NewPassword: "b"})
	require.Equal(t, http.StatusNotFound, statusOf(t, err))

	require.NoError(t, client.UpdatePassword(ctx, sdk.UpdatePasswordRequest{Username: "alice", OldPassword: "pw1", NewPassword: "pw2"}))
	require.NoError(t, client.Login(ctx, "alice", "pw2"))
}

func TestAccountEndpointsRejectBadInput(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	err := client.CreateAccount(ctx, "alice", "")
	var apiErr *sdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, sdk.ErrorCodeValidation, apiErr.Code)
	require.Equal(t, "required", apiErr.Details["password"])

	tests := []struct {
		name string
		path string
		body string
	}{
		{"not json", "/create-account", "username=alice"},
		{"empty body", "/login", ""},
		{"missing fields", "/update-password", `{"username":"alice"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+tt.path, "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/login")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestMovieEndpoints(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	movie, err := client.SearchByName(ctx, sdk.SearchByNameRequest{Name: "Heat"})
	require.NoError(t, err)
	require.Equal(t, "Heat", movie.Name)
	require.Equal(t, "Michael Mann", movie.Director)
	require.Equal(t, []string{"Action", "Crime"}, movie.Genres)
	require.False(t, movie.Saved)

	_, err = client.SearchByName(ctx, sdk.SearchByNameRequest{Name: "Nothing Like This"})
	require.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = client.SearchByDirector(ctx, sdk.SearchByDirectorRequest{Director: "Nobody"})
	require.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = client.SearchByYear(ctx, sdk.SearchByYearRequest{Year: 1800})
	require.Equal(t, http.StatusBadRequest, statusOf(t, err))

	_, err = client.SearchByGenre(ctx, sdk.SearchByGenreRequest{})
	require.Equal(t, http.StatusBadRequest, statusOf(t, err))

	saved, err := client.SearchByLanguage(ctx, sdk.SearchByLanguageRequest{
		LanguageCode:  "ja",
		SearchOptions: sdk.SearchOptions{Favorite: true},
	})
	require.NoError(t, err)
	require.True(t, saved.Saved)
	require.True(t, saved.Favorite)
	require.NotEmpty(t, saved.ID)

	favs, err := client.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	require.Equal(t, "Akira", favs[0].Name)

	_, err = client.SearchByName(ctx, sdk.SearchByNameRequest{Name: "Heat", SearchOptions: sdk.SearchOptions{Save: true}})
	require.NoError(t, err)
	heat, err := client.MarkFavorite(ctx, "Heat")
	require.NoError(t, err)
	require.True(t, heat.Favorite)

	_, err = client.MarkFavorite(ctx, "Collateral")
	require.Equal(t, http.StatusNotFound, statusOf(t, err))

	require.NoError(t, client.DeleteMovie(ctx, saved.ID))
	require.Equal(t, http.StatusConflict, statusOf(t, client.DeleteMovie(ctx, saved.ID)))
	require.Equal(t, http.StatusNotFound, statusOf(t, client.DeleteMovie(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")))

	favs, err = client.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)

	require.NoError(t, client.ClearCatalog(ctx))
	favs, err = client.ListFavorites(ctx)
	require.NoError(t, err)
	require.Empty(t, favs)
}

func TestUpstreamFailureIsBadGateway(t *testing.T) {
	_, client := newTestServer(t)

	// Passes request validation but the fake upstream fails this year.
	_, err := client.SearchByYear(context.Background(), sdk.SearchByYearRequest{Year: 1901})
	require.Equal(t, http.StatusBadGateway, statusOf(t, err))
}

func TestUnreachableUpstreamKeepsKeyPrivate(t *testing.T) {
	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "movies.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	var logs bytes.Buffer
	router := NewRouter("test", st, slog.New(slog.NewJSONHandler(&logs, nil)))
	router.AccountService = &service.AccountService{Credentials: &service.CredentialService{Store: st}}
	router.MovieService = &service.MovieService{
		Store: st,
		TMDB:  tmdb.New("http://127.0.0.1:1", "SUPERSECRETKEY"),
	}
	router.TMDBConfigured = true
	router.ApplyRoutes()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/movies/search-by-name", strings.NewReader(`{"name":"Heat"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotContains(t, rec.Body.String(), "SUPERSECRETKEY")

	var body sdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, sdk.ErrorCodeUpstream, body.Error)
	require.Equal(t, "movie database unavailable", body.ErrorDescription)

	require.Contains(t, logs.String(), "movie database request failed")
	require.NotContains(t, logs.String(), "SUPERSECRETKEY")
}

func TestSystemEndpoints(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "healthy", health.Status)

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "test", live.Version)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"database": "ok", "tmdb": "ok"}, ready.Checks)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	require.Contains(t, body.String(), "movies_http_requests_total")
}

func TestReadyzReportsMissingKey(t *testing.T) {
	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "movies.db")))
	require.NoError(t, err)
	defer st.Close()

	rec := httptest.NewRecorder()
	ReadyzHandler(time.Now(), "v", st, false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp sdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "degraded", resp.Status)
	require.Equal(t, "ok", resp.Checks["database"])
	require.Contains(t, resp.Checks["tmdb"], "no api key")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrDuplicateUser, http.StatusBadRequest},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrNoMoviesFound, http.StatusNotFound},
		{service.ErrDirectorNotFound, http.StatusNotFound},
		{service.ErrMovieAlreadyDeleted, http.StatusConflict},
		{service.ErrUpstream, http.StatusBadGateway},
		{&service.StorageError{Op: "x", Err: errors.New("disk full")}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, _ := classify(tt.err)
		require.Equal(t, tt.want, status, "%v", tt.err)
	}
}
