// Package report runs every analytics question over one movie collection and
// renders the answers.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mflix-insights/analytics"
	"mflix-insights/movie"
)

const (
	// NoMovieFound is shown when no movie qualifies for the fewest-cast question.
	NoMovieFound = "No movie found"
	// NoActor is shown when no movie has any cast.
	NoActor = "None"

	// LongRuntime is the threshold, in minutes, for the long-movie count.
	LongRuntime = 120
)

// Report holds the answers for one collection.
type Report struct {
	ID          string    `json:"id"`
	Year        int       `json:"year"`
	GeneratedAt time.Time `json:"generated_at"`

	MovieCount             int      `json:"movie_count"`
	ReleasedInYear         int      `json:"released_in_year"`
	MaxRuntime             int      `json:"max_runtime"`
	UniqueGenres           int      `json:"unique_genres"`
	HighestRatedCast       []string `json:"highest_rated_cast"`
	FewestCastTitle        string   `json:"fewest_cast_title,omitempty"`
	FewestCastFound        bool     `json:"fewest_cast_found"`
	ActorsInMultipleMovies int      `json:"actors_in_multiple_movies"`
	MostFrequentActor      string   `json:"most_frequent_actor,omitempty"`
	MostFrequentActorFound bool     `json:"most_frequent_actor_found"`
	UniqueLanguages        int      `json:"unique_languages"`
	HasDuplicateTitles     bool     `json:"has_duplicate_titles"`
	LongMovies             int      `json:"long_movies"`
}

// Build answers every question for movies. year labels the collection;
// 0 means it was not restricted to one year.
func Build(year int, movies []movie.Movie) Report {
	r := Report{
		ID:          uuid.NewString(),
		Year:        year,
		GeneratedAt: time.Now().UTC(),

		MovieCount:             analytics.Count(movies),
		MaxRuntime:             analytics.MaxRuntime(movies),
		UniqueGenres:           analytics.UniqueGenreCount(movies),
		HighestRatedCast:       analytics.CastOfHighestRated(movies),
		ActorsInMultipleMovies: analytics.ActorsInMultipleMovies(movies),
		UniqueLanguages:        analytics.UniqueLanguageCount(movies),
		HasDuplicateTitles:     analytics.HasDuplicateTitles(movies),
		LongMovies:             analytics.CountMatching(movies, analytics.RuntimeOver(LongRuntime)),
	}
	if year != 0 {
		r.ReleasedInYear = analytics.CountMatching(movies, analytics.ReleasedIn(year))
	}
	r.FewestCastTitle, r.FewestCastFound = analytics.TitleWithFewestCast(movies)
	r.MostFrequentActor, r.MostFrequentActorFound = analytics.MostFrequentActor(movies)
	return r
}

// FewestCast returns the fewest-cast title, or NoMovieFound.
func (r Report) FewestCast() string {
	if !r.FewestCastFound {
		return NoMovieFound
	}
	return r.FewestCastTitle
}

// TopActor returns the most frequent actor, or NoActor.
func (r Report) TopActor() string {
	if !r.MostFrequentActorFound {
		return NoActor
	}
	return r.MostFrequentActor
}

// Label describes the collection the report covers.
func (r Report) Label() string {
	if r.Year == 0 {
		return "all years"
	}
	return fmt.Sprintf("%d", r.Year)
}

// Lines renders one question and answer per line.
func (r Report) Lines() []string {
	lines := []string{
		fmt.Sprintf("Movies analyzed (%s): %d", r.Label(), r.MovieCount),
	}
	if r.Year != 0 {
		lines = append(lines, fmt.Sprintf("Movies released in %d: %d", r.Year, r.ReleasedInYear))
	}
	return append(lines,
		fmt.Sprintf("Longest runtime: %d min", r.MaxRuntime),
		fmt.Sprintf("Unique genres: %d", r.UniqueGenres),
		fmt.Sprintf("Cast of highest rated movie: %s", castList(r.HighestRatedCast)),
		fmt.Sprintf("Movie with fewest cast members: %s", r.FewestCast()),
		fmt.Sprintf("Actors in more than one movie: %d", r.ActorsInMultipleMovies),
		fmt.Sprintf("Most frequent actor: %s", r.TopActor()),
		fmt.Sprintf("Unique languages: %d", r.UniqueLanguages),
		fmt.Sprintf("Duplicate titles: %t", r.HasDuplicateTitles),
		fmt.Sprintf("Movies longer than %d min: %d", LongRuntime, r.LongMovies),
	)
}

// String renders the report as text.
func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

func castList(cast []string) string {
	if len(cast) == 0 {
		return "-"
	}
	return strings.Join(cast, ", ")
}
