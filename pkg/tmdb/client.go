package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.themoviedb.org/3"

// Client talks to the TMDB v3 API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter

	// onRequest, when set, is told about every request once it finishes.
	onRequest func(endpoint string, err error)
}

type Option func(*Client)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit throttles outbound requests to rps per second with the given
// burst. A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithRequestHook registers fn to observe each request. endpoint is the
// route template, e.g. "/person/{id}/movie_credits".
func WithRequestHook(fn func(endpoint string, err error)) Option {
	return func(c *Client) { c.onRequest = fn }
}

func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) SearchMovies(ctx context.Context, query string) (MoviePage, error) {
	var page MoviePage
	err := c.get(ctx, "/search/movie", "/search/movie", url.Values{"query": {query}}, &page)
	return page, err
}

func (c *Client) DiscoverMovies(ctx context.Context, p DiscoverParams) (MoviePage, error) {
	q := url.Values{}
	if p.PrimaryReleaseYear > 0 {
		q.Set("primary_release_year", strconv.Itoa(p.PrimaryReleaseYear))
	}
	if p.WithOriginalLanguage != "" {
		q.Set("with_original_language", p.WithOriginalLanguage)
	}
	if p.WithGenres > 0 {
		q.Set("with_genres", strconv.Itoa(p.WithGenres))
	}

	var page MoviePage
	err := c.get(ctx, "/discover/movie", "/discover/movie", q, &page)
	return page, err
}

func (c *Client) SearchPeople(ctx context.Context, query string) (PersonPage, error) {
	var page PersonPage
	err := c.get(ctx, "/search/person", "/search/person", url.Values{"query": {query}}, &page)
	return page, err
}

func (c *Client) PersonMovieCredits(ctx context.Context, personID int) (PersonCredits, error) {
	var credits PersonCredits
	path := fmt.Sprintf("/person/%d/movie_credits", personID)
	err := c.get(ctx, "/person/{id}/movie_credits", path, nil, &credits)
	return credits, err
}

func (c *Client) MovieCredits(ctx context.Context, movieID int) (MovieCredits, error) {
	var credits MovieCredits
	path := fmt.Sprintf("/movie/%d/credits", movieID)
	err := c.get(ctx, "/movie/{id}/credits", path, nil, &credits)
	return credits, err
}

func (c *Client) get(ctx context.Context, endpoint, path string, q url.Values, target any) (err error) {
	if c.onRequest != nil {
		defer func() { c.onRequest(endpoint, err) }()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("tmdb: rate limit wait: %w", err)
	}

	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("tmdb: failed to create request: %w", c.redact(err, path))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: failed to send request: %w", c.redact(err, path))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("tmdb: failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		_ = json.Unmarshal(body, apiErr)
		return apiErr
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("tmdb: failed to decode response: %w", err)
	}
	return nil
}

// redact drops the query string, and with it the api key, from URLs that
// net/http embeds in transport errors.
func (c *Client) redact(err error, path string) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = c.baseURL + path
	}
	return err
}
