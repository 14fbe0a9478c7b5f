package analytics

import "mflix-insights/movie"

// Predicate decides whether a movie should be counted by CountMatching.
type Predicate func(movie.Movie) bool

// ReleasedIn matches movies from the given year.
func ReleasedIn(year int) Predicate {
	return func(m movie.Movie) bool { return m.Year() == year }
}

// RuntimeOver matches movies strictly longer than minutes.
func RuntimeOver(minutes int) Predicate {
	return func(m movie.Movie) bool { return m.Runtime() > minutes }
}

// RatedAtLeast matches movies whose IMDb rating is at least rating.
func RatedAtLeast(rating float64) Predicate {
	return func(m movie.Movie) bool { return m.IMDbRating() >= rating }
}

// And matches when every predicate matches. With no predicates it matches
// everything.
func And(preds ...Predicate) Predicate {
	return func(m movie.Movie) bool {
		for _, p := range preds {
			if !p(m) {
				return false
			}
		}
		return true
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(m movie.Movie) bool { return !p(m) }
}
