package sdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) SearchByName(ctx context.Context, req SearchByNameRequest) (*MovieResponse, error) {
	return c.search(ctx, "/movies/search-by-name", req)
}

func (c *Client) SearchByYear(ctx context.Context, req SearchByYearRequest) (*MovieResponse, error) {
	return c.search(ctx, "/movies/search-by-year", req)
}

func (c *Client) SearchByLanguage(ctx context.Context, req SearchByLanguageRequest) (*MovieResponse, error) {
	return c.search(ctx, "/movies/search-by-language", req)
}

func (c *Client) SearchByDirector(ctx context.Context, req SearchByDirectorRequest) (*MovieResponse, error) {
	return c.search(ctx, "/movies/search-by-director", req)
}

func (c *Client) SearchByGenre(ctx context.Context, req SearchByGenreRequest) (*MovieResponse, error) {
	return c.search(ctx, "/movies/search-by-genre", req)
}

func (c *Client) search(ctx context.Context, path string, req any) (*MovieResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}

	var movie MovieResponse
	if err := decodeJSON(resp, &movie, http.StatusOK); err != nil {
		return nil, err
	}
	return &movie, nil
}

// MarkFavorite flags a stored movie, looked up by name, as a favorite.
func (c *Client) MarkFavorite(ctx context.Context, name string) (*MovieResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/movies/favorites", FavoriteRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var movie MovieResponse
	if err := decodeJSON(resp, &movie, http.StatusOK); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Client) ListFavorites(ctx context.Context) ([]MovieResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/movies/favorites", nil)
	if err != nil {
		return nil, err
	}

	var favs FavoritesResponse
	if err := decodeJSON(resp, &favs, http.StatusOK); err != nil {
		return nil, err
	}
	return favs.Favorites, nil
}

// DeleteMovie soft deletes a stored movie.
func (c *Client) DeleteMovie(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/movies/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ClearCatalog removes every stored movie.
func (c *Client) ClearCatalog(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/movies", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
