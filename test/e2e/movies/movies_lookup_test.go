//go:build e2e

package movies_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/movies/pkg/sdk"
	"github.com/stretchr/testify/require"
)

func TestLookupWithUnreachableTMDB(t *testing.T) {
	client := setupMoviesContainer(t, nil)

	_, err := client.SearchByName(t.Context(), sdk.SearchByNameRequest{Name: "Heat"})
	apiErr := requireAPIError(t, err, http.StatusBadGateway)
	require.Equal(t, sdk.ErrorCodeUpstream, apiErr.Code)
}

func TestLookupValidation(t *testing.T) {
	client := setupMoviesContainer(t, nil)

	_, err := client.SearchByYear(t.Context(), sdk.SearchByYearRequest{Year: 1500})
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestEmptyCatalog(t *testing.T) {
	client := setupMoviesContainer(t, nil)
	ctx := t.Context()

	favs, err := client.ListFavorites(ctx)
	require.NoError(t, err)
	require.Empty(t, favs)

	_, err = client.MarkFavorite(ctx, "Heat")
	requireAPIError(t, err, http.StatusNotFound)

	require.NoError(t, client.ClearCatalog(ctx))
}
