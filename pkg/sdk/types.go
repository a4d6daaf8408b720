package sdk

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned with 400 when request fields fail
// validation. Details maps the JSON field name to the reason.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is served by /health, /livez and /readyz. Checks is only
// filled in by /readyz.
type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime,omitempty"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// ============================================================================
// Accounts
// ============================================================================

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdatePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// ============================================================================
// Movies
// ============================================================================

// SearchOptions asks the server to store the movie it found. Favorite
// stores it flagged as a favorite.
type SearchOptions struct {
	Save     bool `json:"save,omitempty"`
	Favorite bool `json:"favorite,omitempty"`
}

type SearchByNameRequest struct {
	Name string `json:"name" validate:"required"`
	SearchOptions
}

type SearchByYearRequest struct {
	Year int `json:"year" validate:"gte=1900"`
	SearchOptions
}

type SearchByLanguageRequest struct {
	LanguageCode string `json:"language_code" validate:"required"`
	SearchOptions
}

type SearchByDirectorRequest struct {
	Director string `json:"director" validate:"required"`
	SearchOptions
}

type SearchByGenreRequest struct {
	GenreID int `json:"genre_id" validate:"gt=0"`
	SearchOptions
}

type FavoriteRequest struct {
	Name string `json:"name" validate:"required"`
}

type MovieResponse struct {
	ID               string   `json:"id,omitempty"`
	TMDBID           int      `json:"tmdb_id,omitempty"`
	Name             string   `json:"name"`
	Year             int      `json:"year"`
	Director         string   `json:"director"`
	Genres           []string `json:"genres"`
	OriginalLanguage string   `json:"original_language"`
	Favorite         bool     `json:"favorite"`

	// Saved reports whether the movie is in the local catalog.
	Saved bool `json:"saved"`
}

type FavoritesResponse struct {
	Favorites []MovieResponse `json:"favorites"`
}
