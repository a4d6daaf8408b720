package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MinMovieYear is the earliest release year a stored movie may carry.
const MinMovieYear = 1900

// UnknownDirector is used when no directing credit can be found.
const UnknownDirector = "Unknown"

var ErrInvalidMovie = errors.New("domain: invalid movie")

type Movie struct {
	ID               string
	TMDBID           int
	Name             string
	Year             int
	Director         string
	Genres           []string
	OriginalLanguage string
	Favorite         bool
	Deleted          bool
	DeletedAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks the fields a movie must carry before it is stored.
func (m Movie) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMovie)
	case m.Year <= MinMovieYear:
		return fmt.Errorf("%w: year must be after %d", ErrInvalidMovie, MinMovieYear)
	case len(m.Genres) == 0:
		return fmt.Errorf("%w: at least one genre is required", ErrInvalidMovie)
	case strings.TrimSpace(m.OriginalLanguage) == "":
		return fmt.Errorf("%w: original language is required", ErrInvalidMovie)
	}
	return nil
}

// FilterKind selects which TMDB lookup a MovieFilter runs.
type FilterKind string

const (
	FilterByName     FilterKind = "name"
	FilterByYear     FilterKind = "year"
	FilterByLanguage FilterKind = "language"
	FilterByDirector FilterKind = "director"
	FilterByGenre    FilterKind = "genre"
)

// MovieFilter describes a random movie lookup. Only the field matching Kind
// is read.
type MovieFilter struct {
	Kind     FilterKind
	Name     string
	Year     int
	Language string
	Director string
	GenreID  int
}
