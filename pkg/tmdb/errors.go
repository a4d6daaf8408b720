package tmdb

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from TMDB.
type APIError struct {
	HTTPStatus    int    `json:"-"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func (e *APIError) Error() string {
	if e.StatusMessage != "" {
		return fmt.Sprintf("tmdb: %d %s (code %d)", e.HTTPStatus, e.StatusMessage, e.StatusCode)
	}
	return fmt.Sprintf("tmdb: unexpected status %d", e.HTTPStatus)
}

// NotFound reports whether TMDB answered 404 for the requested resource.
func (e *APIError) NotFound() bool {
	return e.HTTPStatus == http.StatusNotFound
}
