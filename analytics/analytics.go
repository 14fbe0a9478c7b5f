// Package analytics answers fixed questions about a collection of movies.
//
// Every function is pure: it reads the slice it is given, never modifies or
// retains it, and returns a freshly allocated result. Empty input yields the
// documented default instead of an error. Where several movies tie, the one
// that comes first in the input wins.
package analytics

import "mflix-insights/movie"

// Count returns the number of movies.
func Count(movies []movie.Movie) int {
	return len(movies)
}

// MaxRuntime returns the longest runtime in minutes, or 0 for no movies.
func MaxRuntime(movies []movie.Movie) int {
	longest := 0
	for i, m := range movies {
		if i == 0 || m.Runtime() > longest {
			longest = m.Runtime()
		}
	}
	return longest
}

// UniqueGenreCount returns how many distinct genre names appear across all
// movies. Names are compared exactly.
func UniqueGenreCount(movies []movie.Movie) int {
	return len(pool(movies, movie.Movie.Genres).order)
}

// UniqueLanguageCount returns how many distinct languages appear across all
// movies. Names are compared exactly.
func UniqueLanguageCount(movies []movie.Movie) int {
	return len(pool(movies, movie.Movie.Languages).order)
}

// CastOfHighestRated returns the cast of the movie with the highest IMDb
// rating. It returns an empty slice when there are no movies.
func CastOfHighestRated(movies []movie.Movie) []string {
	best := -1
	for i, m := range movies {
		if best < 0 || m.IMDbRating() > movies[best].IMDbRating() {
			best = i
		}
	}
	if best < 0 {
		return []string{}
	}
	return movies[best].Cast()
}

// TitleWithFewestCast returns the title of the movie with the fewest cast
// members. ok is false when there are no movies.
func TitleWithFewestCast(movies []movie.Movie) (title string, ok bool) {
	best := -1
	for i, m := range movies {
		if best < 0 || m.CastSize() < movies[best].CastSize() {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return movies[best].Title(), true
}

// ActorsInMultipleMovies counts the distinct actors who are in the cast of
// more than one movie. An actor listed twice in the same cast still counts
// as appearing in that movie once.
func ActorsInMultipleMovies(movies []movie.Movie) int {
	appearances := make(map[string]int)
	for _, m := range movies {
		seen := make(map[string]struct{}, m.CastSize())
		for _, actor := range m.Cast() {
			if _, dup := seen[actor]; dup {
				continue
			}
			seen[actor] = struct{}{}
			appearances[actor]++
		}
	}

	count := 0
	for _, n := range appearances {
		if n > 1 {
			count++
		}
	}
	return count
}

// MostFrequentActor returns the actor with the most cast entries across all
// movies. Ties go to the actor first encountered. ok is false when no movie
// has any cast.
func MostFrequentActor(movies []movie.Movie) (actor string, ok bool) {
	t := pool(movies, movie.Movie.Cast)
	return t.mostFrequent()
}

// HasDuplicateTitles reports whether two movies share exactly the same title.
func HasDuplicateTitles(movies []movie.Movie) bool {
	seen := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		if _, dup := seen[m.Title()]; dup {
			return true
		}
		seen[m.Title()] = struct{}{}
	}
	return false
}

// CountMatching returns the number of movies for which match returns true.
// A nil match counts nothing.
func CountMatching(movies []movie.Movie, match Predicate) int {
	if match == nil {
		return 0
	}
	count := 0
	for _, m := range movies {
		if match(m) {
			count++
		}
	}
	return count
}
