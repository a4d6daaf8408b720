// Package tmdb is a small client for the parts of The Movie Database v3 API
// the movies service uses: movie search, discover, people search and credits.
//
// Requests authenticate with an API key sent as the api_key query parameter
// and are throttled client side so a burst of lookups cannot exhaust the
// upstream quota.
//
//	c := tmdb.New("https://api.themoviedb.org/3", apiKey,
//		tmdb.WithRateLimit(20, 5),
//	)
//	page, err := c.SearchMovies(ctx, "Heat")
package tmdb
