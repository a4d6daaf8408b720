package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/sdk"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

type validatable interface {
	Validate() map[string]string
}

// decodeRequest decodes the JSON body into dst and validates it, writing the
// 400 response itself when either step fails.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst validatable) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		slogx.FromContext(r.Context()).Warn("invalid request body", slogx.Err(err))
		sdk.ErrInvalidBody.WriteError(w)
		return false
	}
	if details := dst.Validate(); details != nil {
		sdk.WriteValidationError(w, details)
		return false
	}
	return true
}

// writeServiceError maps service errors onto status codes. Anything
// unrecognised is logged and answered with 500 without leaking detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		sdk.WriteValidationError(w, map[string]string{verr.Field: verr.Reason})
		return
	}

	status, code := classify(err)
	if status == http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", slogx.Err(err))
		sdk.ErrServerError.WriteError(w)
		return
	}

	description := err.Error()
	if status == http.StatusBadGateway {
		// Upstream failures are logged by the service; the text stays server side.
		description = "movie database unavailable"
	}
	sdk.NewAPIError(status, code, description).WriteError(w)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrDuplicateUser):
		return http.StatusBadRequest, sdk.ErrorCodeUserExists
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, sdk.ErrorCodeUserNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, sdk.ErrorCodeInvalidCredentials
	case errors.Is(err, service.ErrInvalidFilter), errors.Is(err, domain.ErrInvalidMovie):
		return http.StatusBadRequest, sdk.ErrorCodeInvalidRequest
	case errors.Is(err, service.ErrNoMoviesFound),
		errors.Is(err, service.ErrDirectorNotFound),
		errors.Is(err, service.ErrMovieNotFound):
		return http.StatusNotFound, sdk.ErrorCodeNotFound
	case errors.Is(err, service.ErrMovieAlreadyDeleted), errors.Is(err, service.ErrMovieExists):
		return http.StatusConflict, sdk.ErrorCodeConflict
	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway, sdk.ErrorCodeUpstream
	default:
		return http.StatusInternalServerError, sdk.ErrorCodeServerError
	}
}
