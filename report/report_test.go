package report

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mflix-insights/movie/movietest"
)

func TestBuild(t *testing.T) {
	r := Build(1975, movietest.Sample())

	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.False(t, r.GeneratedAt.IsZero())

	assert.Equal(t, 1975, r.Year)
	assert.Equal(t, 5, r.MovieCount)
	assert.Equal(t, 2, r.ReleasedInYear)
	assert.Equal(t, 175, r.MaxRuntime)
	assert.Equal(t, 3, r.UniqueGenres)
	assert.Equal(t, []string{"Joe Locke", "Kit Connor", "Actor A"}, r.HighestRatedCast)
	assert.Equal(t, "Heated Rivalry", r.FewestCast())
	assert.Equal(t, 1, r.ActorsInMultipleMovies)
	assert.Equal(t, "Actor A", r.TopActor())
	assert.Equal(t, 3, r.UniqueLanguages)
	assert.True(t, r.HasDuplicateTitles)
	assert.Equal(t, 3, r.LongMovies)
}

func TestBuildEmpty(t *testing.T) {
	r := Build(0, nil)

	assert.Zero(t, r.MovieCount)
	assert.Empty(t, r.HighestRatedCast)
	assert.Equal(t, NoMovieFound, r.FewestCast())
	assert.Equal(t, NoActor, r.TopActor())
	assert.Equal(t, "all years", r.Label())
}

func TestBuildAssignsDistinctIDs(t *testing.T) {
	assert.NotEqual(t, Build(0, nil).ID, Build(0, nil).ID)
}

func TestLines(t *testing.T) {
	lines := Build(1975, movietest.Sample()).Lines()

	assert.Contains(t, lines, "Movies analyzed (1975): 5")
	assert.Contains(t, lines, "Movies released in 1975: 2")
	assert.Contains(t, lines, "Longest runtime: 175 min")
	assert.Contains(t, lines, "Cast of highest rated movie: Joe Locke, Kit Connor, Actor A")
	assert.Contains(t, lines, "Movie with fewest cast members: Heated Rivalry")
	assert.Contains(t, lines, "Most frequent actor: Actor A")
	assert.Contains(t, lines, "Duplicate titles: true")
	assert.Contains(t, lines, "Movies longer than 120 min: 3")
}

func TestLinesAllYearsOmitsYearCount(t *testing.T) {
	s := Build(0, movietest.Sample()).String()

	assert.NotContains(t, s, "Movies released in")
	assert.Contains(t, s, "Movies analyzed (all years): 5")
}

func TestLinesEmpty(t *testing.T) {
	lines := Build(2001, nil).Lines()

	assert.Contains(t, lines, "Cast of highest rated movie: -")
	assert.Contains(t, lines, "Movie with fewest cast members: No movie found")
	assert.Contains(t, lines, "Most frequent actor: None")
}

func TestJSON(t *testing.T) {
	r := Build(1975, movietest.Sample())

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, r.GeneratedAt.Equal(decoded.GeneratedAt))
	decoded.GeneratedAt = r.GeneratedAt
	assert.Equal(t, r, decoded)
}
