package movie

import (
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FromDocument converts a raw movie document into a Movie.
// It never fails: a missing field, or one holding an unexpected type,
// takes its zero value, and a nil document yields the zero Movie.
func FromDocument(doc bson.M) Movie {
	if doc == nil {
		return New(Fields{})
	}

	return New(Fields{
		ID:         idString(doc["_id"]),
		Title:      stringValue(doc["title"]),
		Year:       intValue(doc["year"]),
		Runtime:    intValue(doc["runtime"]),
		Genres:     stringList(doc["genres"]),
		Directors:  stringList(doc["directors"]),
		Cast:       stringList(doc["cast"]),
		IMDbRating: rating(doc["imdb"]),
		Languages:  stringList(doc["languages"]),
	})
}

// FromRaw decodes raw BSON and normalizes it with FromDocument.
// Undecodable input yields the zero Movie.
func FromRaw(raw bson.Raw) Movie {
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return New(Fields{})
	}
	return FromDocument(doc)
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}

// intValue accepts only integer BSON types, matching how the collection
// stores year and runtime. Doubles and strings (e.g. "1975è") give 0.
func intValue(v interface{}) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func rating(v interface{}) float64 {
	var r interface{}
	switch imdb := v.(type) {
	case bson.M:
		r = imdb["rating"]
	case map[string]interface{}:
		r = imdb["rating"]
	case bson.D:
		for _, e := range imdb {
			if e.Key == "rating" {
				r = e.Value
				break
			}
		}
	default:
		return 0
	}
	return numberValue(r)
}

func numberValue(v interface{}) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	case primitive.Decimal128:
		parsed, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// stringList returns the elements of an array field. If any element is not
// a string the whole field is treated as mismatched and comes back empty.
func stringList(v interface{}) []string {
	var items []interface{}
	switch list := v.(type) {
	case []string:
		return list
	case bson.A:
		items = list
	case []interface{}:
		items = list
	default:
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}
