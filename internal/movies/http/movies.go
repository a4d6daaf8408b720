package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/sdk"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

type MoviesHandler struct {
	MovieService *service.MovieService
}

// HandleSearchByName godoc
//
//	@Summary		Random Movie By Name
//	@Description	Search TMDB by title and return one match at random.
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SearchByNameRequest		true	"name, save, favorite"
//	@Success		200		{object}	sdk.MovieResponse
//	@Failure		400		{object}	sdk.ValidationErrorResponse
//	@Failure		404		{object}	sdk.ErrorResponse	"no movies found"
//	@Failure		502		{object}	sdk.ErrorResponse	"TMDB unavailable"
//	@Router			/movies/search-by-name [post].
func (h *MoviesHandler) HandleSearchByName(w http.ResponseWriter, r *http.Request) {
	var req sdk.SearchByNameRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	h.lookup(w, r, domain.MovieFilter{Kind: domain.FilterByName, Name: req.Name}, req.SearchOptions)
}

// HandleSearchByYear godoc
//
//	@Summary		Random Movie By Year
//	@Description	Discover movies released in a year and return one at random.
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SearchByYearRequest		true	"year, save, favorite"
//	@Success		200		{object}	sdk.MovieResponse
//	@Failure		400		{object}	sdk.ValidationErrorResponse
//	@Failure		404		{object}	sdk.ErrorResponse	"no movies found"
//	@Failure		502		{object}	sdk.ErrorResponse	"TMDB unavailable"
//	@Router			/movies/search-by-year [post].
func (h *MoviesHandler) HandleSearchByYear(w http.ResponseWriter, r *http.Request) {
	var req sdk.SearchByYearRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	h.lookup(w, r, domain.MovieFilter{Kind: domain.FilterByYear, Year: req.Year}, req.SearchOptions)
}

// HandleSearchByLanguage godoc
//
//	@Summary		Random Movie By Original Language
//	@Description	Discover movies by ISO 639-1 original language and return one at random.
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SearchByLanguageRequest	true	"language_code, save, favorite"
//	@Success		200		{object}	sdk.MovieResponse
//	@Failure		400		{object}	sdk.ValidationErrorResponse
//	@Failure		404		{object}	sdk.ErrorResponse	"no movies found"
//	@Failure		502		{object}	sdk.ErrorResponse	"TMDB unavailable"
//	@Router			/movies/search-by-language [post].
func (h *MoviesHandler) HandleSearchByLanguage(w http.ResponseWriter, r *http.Request) {
	var req sdk.SearchByLanguageRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	h.lookup(w, r, domain.MovieFilter{Kind: domain.FilterByLanguage, Language: req.LanguageCode}, req.SearchOptions)
}

// HandleSearchByDirector godoc
//
//	@Summary		Random Movie By Director
//	@Description	Find a person on TMDB and return one of the movies they directed at random.
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SearchByDirectorRequest	true	"director, save, favorite"
//	@Success		200		{object}	sdk.MovieResponse
//	@Failure		400		{object}	sdk.ValidationErrorResponse
//	@Failure		404		{object}	sdk.ErrorResponse	"director or movies not found"
//	@Failure		502		{object}	sdk.ErrorResponse	"TMDB unavailable"
//	@Router			/movies/search-by-director [post].
func (h *MoviesHandler) HandleSearchByDirector(w http.ResponseWriter, r *http.Request) {
	var req sdk.SearchByDirectorRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	h.lookup(w, r, domain.MovieFilter{Kind: domain.FilterByDirector, Director: req.Director}, req.SearchOptions)
}

// HandleSearchByGenre godoc
//
//	@Summary		Random Movie By Genre
//	@Description	Discover movies with a TMDB genre id and return one at random.
//	@Tags			Movies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SearchByGenreRequest	true	"genre_id, save, favorite"
//	@Success		200		{object}	sdk.MovieResponse
//	@Failure		400		{object}	sdk.ValidationErrorResponse
//	@Failure		404		{object}	sdk.ErrorResponse	"no movies found"
//	@Failure		502		{object}	sdk.ErrorResponse	"TMDB unavailable"
//	@Router			/movies/search-by-genre [post].
func (h *MoviesHandler) HandleSearchByGenre(w http.ResponseWriter, r *http.Request) {
	var req sdk.SearchByGenreRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	h.lookup(w, r, domain.MovieFilter{Kind: domain.FilterByGenre, GenreID: req.GenreID}, req.SearchOptions)
}

func (h *MoviesHandler) lookup(w http.ResponseWriter, r *http.Request, f domain.MovieFilter, opts sdk.SearchOptions) {
	res, err := h.MovieService.RandomMovie(r.Context(), f, service.LookupOptions{
		Save:     opts.Save,
		Favorite: opts.Favorite,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMovieResponse(res.Movie, res.Saved))
}

// HandleMarkFavorite godoc
//
//	@Summary		Mark Favorite
//	@Description	Flag a movie from the local catalog as a favorite.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.FavoriteRequest		true	"name"
//	@Success		200		{object}	sdk.MovieResponse
//	@Failure		400		{object}	sdk.ValidationErrorResponse
//	@Failure		404		{object}	sdk.ErrorResponse	"movie not in catalog"
//	@Router			/movies/favorites [post].
func (h *MoviesHandler) HandleMarkFavorite(w http.ResponseWriter, r *http.Request) {
	var req sdk.FavoriteRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	m, err := h.MovieService.MarkFavorite(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMovieResponse(m, true))
}

// HandleListFavorites godoc
//
//	@Summary		List Favorites
//	@Description	Favorite movies in the local catalog, ordered by name.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	sdk.FavoritesResponse
//	@Failure		500	{object}	sdk.ErrorResponse
//	@Router			/movies/favorites [get].
func (h *MoviesHandler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.MovieService.ListFavorites(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := sdk.FavoritesResponse{Favorites: make([]sdk.MovieResponse, 0, len(favs))}
	for _, m := range favs {
		resp.Favorites = append(resp.Favorites, toMovieResponse(m, true))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleDelete godoc
//
//	@Summary		Delete Movie
//	@Description	Soft delete a movie from the local catalog.
//	@Tags			Catalog
//	@Param			id	path	string	true	"Movie id"
//	@Success		204
//	@Failure		404	{object}	sdk.ErrorResponse	"movie not in catalog"
//	@Failure		409	{object}	sdk.ErrorResponse	"already deleted"
//	@Router			/movies/{id} [delete].
func (h *MoviesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.MovieService.DeleteMovie(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClear godoc
//
//	@Summary		Clear Catalog
//	@Description	Remove every movie from the local catalog, favorites included.
//	@Tags			Catalog
//	@Success		204
//	@Failure		500	{object}	sdk.ErrorResponse
//	@Router			/movies [delete].
func (h *MoviesHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	n, err := h.MovieService.ClearCatalog(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("catalog cleared via api", slog.Int64("removed", n))
	w.WriteHeader(http.StatusNoContent)
}

func toMovieResponse(m domain.Movie, saved bool) sdk.MovieResponse {
	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}
	return sdk.MovieResponse{
		ID:               m.ID,
		TMDBID:           m.TMDBID,
		Name:             m.Name,
		Year:             m.Year,
		Director:         m.Director,
		Genres:           genres,
		OriginalLanguage: m.OriginalLanguage,
		Favorite:         m.Favorite,
		Saved:            saved,
	}
}
