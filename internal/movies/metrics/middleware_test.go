package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := Middleware(mux)

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "DELETE /movies/{id}", "2xx")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/movies/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	require.Equal(t, before+3, testutil.ToFloat64(counter))
	require.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddlewareUnmatchedRoute(t *testing.T) {
	h := Middleware(http.NewServeMux())

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "4xx")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, before+1, testutil.ToFloat64(counter))
}
