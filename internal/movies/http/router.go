package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/metrics"
	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/movies/api/movies" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate swag init -g router.go -d ./,../../../pkg/sdk -o ../../../api/movies --packageName movies

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
	MovieService   *service.MovieService

	// TMDBConfigured is reported by /readyz.
	TMDBConfigured bool
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// metrics.Middleware must stay innermost so the matched pattern is set
	// on the request before it reads it.
	r.middlewares = []httpx.Middleware{
		httpx.Recover,
		slogx.HTTPMiddleware(r.logger),
		metrics.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerMovies()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Movies Service API
//	@version		0.1.0
//	@description	User accounts with salted password hashing, and random movie lookups backed by TMDB
//	@description	with an optional local catalog of saved and favorite movies.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/movies
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{AccountService: r.AccountService}

	r.Mux.HandleFunc("POST /create-account", h.HandleCreate)
	r.Mux.HandleFunc("POST /login", h.HandleLogin)
	r.Mux.HandleFunc("POST /update-password", h.HandleUpdatePassword)
}

func (r *Router) registerMovies() {
	h := &MoviesHandler{MovieService: r.MovieService}

	r.Mux.HandleFunc("POST /movies/search-by-name", h.HandleSearchByName)
	r.Mux.HandleFunc("POST /movies/search-by-year", h.HandleSearchByYear)
	r.Mux.HandleFunc("POST /movies/search-by-language", h.HandleSearchByLanguage)
	r.Mux.HandleFunc("POST /movies/search-by-director", h.HandleSearchByDirector)
	r.Mux.HandleFunc("POST /movies/search-by-genre", h.HandleSearchByGenre)

	r.Mux.HandleFunc("POST /movies/favorites", h.HandleMarkFavorite)
	r.Mux.HandleFunc("GET /movies/favorites", h.HandleListFavorites)

	r.Mux.HandleFunc("DELETE /movies/{id}", h.HandleDelete)
	r.Mux.HandleFunc("DELETE /movies", h.HandleClear)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /health", HealthHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TMDBConfigured))
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
