package tmdb

import (
	"strconv"
	"time"
)

// MovieResult is one entry of a search or discover page.
type MovieResult struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	ReleaseDate      string `json:"release_date"`
	OriginalLanguage string `json:"original_language"`
	GenreIDs         []int  `json:"genre_ids"`
	Overview         string `json:"overview,omitempty"`
}

// Year parses the year out of ReleaseDate. It returns 0 when the date is
// missing or malformed.
func (m MovieResult) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	if t, err := time.Parse(time.DateOnly, m.ReleaseDate); err == nil {
		return t.Year()
	}
	y, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

type MoviePage struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

type Person struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	KnownForDepartment string `json:"known_for_department"`
}

type PersonPage struct {
	Page    int      `json:"page"`
	Results []Person `json:"results"`
}

// CrewCredit is a crew entry from either /person/{id}/movie_credits (movie
// fields populated) or /movie/{id}/credits (person fields populated).
type CrewCredit struct {
	MovieResult
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

type PersonCredits struct {
	ID   int          `json:"id"`
	Crew []CrewCredit `json:"crew"`
}

type MovieCredits struct {
	ID   int          `json:"id"`
	Crew []CrewCredit `json:"crew"`
}

// DiscoverParams narrows /discover/movie. Zero values are omitted.
type DiscoverParams struct {
	PrimaryReleaseYear   int
	WithOriginalLanguage string
	WithGenres           int
}
