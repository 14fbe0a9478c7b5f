package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesLists(t *testing.T) {
	cast := []string{"Joe Locke", "Kit Connor"}
	m := New(Fields{Title: "Heartstopper", Cast: cast})

	cast[0] = "changed"
	assert.Equal(t, []string{"Joe Locke", "Kit Connor"}, m.Cast())

	got := m.Cast()
	got[1] = "changed"
	assert.Equal(t, []string{"Joe Locke", "Kit Connor"}, m.Cast())
	assert.Equal(t, 2, m.CastSize())
}

func TestNewNilListsAreEmpty(t *testing.T) {
	m := New(Fields{})

	for name, list := range map[string][]string{
		"genres":    m.Genres(),
		"directors": m.Directors(),
		"cast":      m.Cast(),
		"languages": m.Languages(),
	} {
		require.NotNil(t, list, name)
		assert.Empty(t, list, name)
	}
	assert.Equal(t, "", m.ID())
	assert.Equal(t, "", m.Title())
	assert.Zero(t, m.Year())
	assert.Zero(t, m.Runtime())
	assert.Zero(t, m.IMDbRating())
}

func TestFieldsRoundTrip(t *testing.T) {
	in := Fields{
		ID:         "42",
		Title:      "Young Royals",
		Year:       1972,
		Runtime:    175,
		Genres:     []string{"Drama", "Romance"},
		Directors:  []string{"Fake Director 4"},
		Cast:       []string{"Edvin Ryding", "Omar Rudberg"},
		IMDbRating: 9.2,
		Languages:  []string{"Swedish", "English"},
	}

	assert.Equal(t, in, New(in).Fields())
}

func TestString(t *testing.T) {
	m := New(Fields{ID: "7", Title: "Jaws", Year: 1975, IMDbRating: 8})
	assert.Contains(t, m.String(), `title="Jaws"`)
	assert.Contains(t, m.String(), "imdbRating=8.0")
}
