package analytics

import "mflix-insights/movie"

// tally counts occurrences while remembering the order in which each value
// was first seen.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(value string) {
	if _, exists := t.counts[value]; !exists {
		t.order = append(t.order, value)
	}
	t.counts[value]++
}

// mostFrequent returns the value with the highest count, preferring the
// earliest first-seen value on ties.
func (t *tally) mostFrequent() (string, bool) {
	if len(t.order) == 0 {
		return "", false
	}
	best := t.order[0]
	for _, value := range t.order[1:] {
		if t.counts[value] > t.counts[best] {
			best = value
		}
	}
	return best, true
}

// pool flattens one list field of every movie into a tally, in input order.
func pool(movies []movie.Movie, field func(movie.Movie) []string) *tally {
	t := newTally()
	for _, m := range movies {
		for _, value := range field(m) {
			t.add(value)
		}
	}
	return t
}
