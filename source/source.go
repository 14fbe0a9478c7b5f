// Package source fetches movie records for analysis.
package source

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mflix-insights/movie"
)

// Query selects the movies to fetch.
type Query struct {
	// Year restricts results to one release year. 0 selects every year.
	Year int
}

// Filter returns the document filter for q.
func (q Query) Filter() bson.D {
	if q.Year == 0 {
		return bson.D{}
	}
	return bson.D{{Key: "year", Value: int32(q.Year)}}
}

// Source returns normalized movies in the order the backing store yields them.
type Source interface {
	Movies(ctx context.Context, q Query) ([]movie.Movie, error)
}
