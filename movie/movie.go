package movie

import (
	"fmt"
	"slices"
)

// Movie is the normalized, read-only view of one movie document.
// Fields are unexported so a record cannot change once built; list accessors
// return copies.
type Movie struct {
	id         string
	title      string
	year       int
	runtime    int
	genres     []string
	directors  []string
	cast       []string
	imdbRating float64
	languages  []string
}

// Fields carries the values used to build a Movie.
type Fields struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	Runtime    int      `json:"runtime"`
	Genres     []string `json:"genres"`
	Directors  []string `json:"directors"`
	Cast       []string `json:"cast"`
	IMDbRating float64  `json:"imdb_rating"`
	Languages  []string `json:"languages"`
}

// New builds a Movie from f. Slices are copied and nil slices become empty.
func New(f Fields) Movie {
	return Movie{
		id:         f.ID,
		title:      f.Title,
		year:       f.Year,
		runtime:    f.Runtime,
		genres:     cloneList(f.Genres),
		directors:  cloneList(f.Directors),
		cast:       cloneList(f.Cast),
		imdbRating: f.IMDbRating,
		languages:  cloneList(f.Languages),
	}
}

func cloneList(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	return slices.Clone(in)
}

func (m Movie) ID() string          { return m.id }
func (m Movie) Title() string       { return m.title }
func (m Movie) Year() int           { return m.year }
func (m Movie) Runtime() int        { return m.runtime }
func (m Movie) IMDbRating() float64 { return m.imdbRating }

func (m Movie) Genres() []string    { return cloneList(m.genres) }
func (m Movie) Directors() []string { return cloneList(m.directors) }
func (m Movie) Cast() []string      { return cloneList(m.cast) }
func (m Movie) Languages() []string { return cloneList(m.languages) }

// CastSize returns the number of cast entries without copying the list.
func (m Movie) CastSize() int { return len(m.cast) }

// Fields returns a copy of the record's values.
func (m Movie) Fields() Fields {
	return Fields{
		ID:         m.id,
		Title:      m.title,
		Year:       m.year,
		Runtime:    m.runtime,
		Genres:     m.Genres(),
		Directors:  m.Directors(),
		Cast:       m.Cast(),
		IMDbRating: m.imdbRating,
		Languages:  m.Languages(),
	}
}

func (m Movie) String() string {
	return fmt.Sprintf("Movie{id=%q, title=%q, year=%d, runtime=%d, genres=%v, directors=%v, cast=%v, imdbRating=%.1f, languages=%v}",
		m.id, m.title, m.year, m.runtime, m.genres, m.directors, m.cast, m.imdbRating, m.languages)
}
