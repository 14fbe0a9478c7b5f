// Package movietest provides the shared five-movie collection used across
// package tests.
package movietest

import "mflix-insights/movie"

// Sample returns a fresh copy of the reference collection, in source order.
//
//	A  Heated Rivalry             1975  124 min  8.0  [Actor A, Ilya Rozanov, Shane Hollander]
//	B  Heated Rivalry             1975   90 min  4.0  [Actor A]
//	C  Red, White and Royal Blue  1977  121 min  8.6  [Taylor Zakhar Perez, Nicholas Galitzine]
//	D  Young Royals               1972  175 min  9.2  [Edvin Ryding, Omar Rudberg]
//	E  Heartstopper               2022   30 min  9.8  [Joe Locke, Kit Connor, Actor A]
func Sample() []movie.Movie {
	return []movie.Movie{
		movie.New(movie.Fields{
			ID:         "1",
			Title:      "Heated Rivalry",
			Year:       1975,
			Genres:     []string{"Romance", "Drama"},
			Directors:  []string{"Fake Director 1"},
			Cast:       []string{"Actor A", "Ilya Rozanov", "Shane Hollander"},
			IMDbRating: 8.0,
			Languages:  []string{"English"},
			Runtime:    124,
		}),
		movie.New(movie.Fields{
			ID:         "2",
			Title:      "Heated Rivalry",
			Year:       1975,
			Genres:     []string{"Romance"},
			Directors:  []string{"Fake Director 2"},
			Cast:       []string{"Actor A"},
			IMDbRating: 4.0,
			Languages:  []string{"English"},
			Runtime:    90,
		}),
		movie.New(movie.Fields{
			ID:         "3",
			Title:      "Red, White and Royal Blue",
			Year:       1977,
			Genres:     []string{"Romance", "Comedy"},
			Directors:  []string{"Fake Director 3"},
			Cast:       []string{"Taylor Zakhar Perez", "Nicholas Galitzine"},
			IMDbRating: 8.6,
			Languages:  []string{"English", "Spanish"},
			Runtime:    121,
		}),
		movie.New(movie.Fields{
			ID:         "4",
			Title:      "Young Royals",
			Year:       1972,
			Genres:     []string{"Drama", "Romance"},
			Directors:  []string{"Fake Director 4"},
			Cast:       []string{"Edvin Ryding", "Omar Rudberg"},
			IMDbRating: 9.2,
			Languages:  []string{"Swedish", "English"},
			Runtime:    175,
		}),
		movie.New(movie.Fields{
			ID:         "5",
			Title:      "Heartstopper",
			Year:       2022,
			Genres:     []string{"Romance", "Drama"},
			Directors:  []string{"Fake Director 5"},
			Cast:       []string{"Joe Locke", "Kit Connor", "Actor A"},
			IMDbRating: 9.8,
			Languages:  []string{"English"},
			Runtime:    30,
		}),
	}
}
