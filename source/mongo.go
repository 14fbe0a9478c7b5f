package source

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"mflix-insights/movie"
)

// MongoSource reads movies from a MongoDB collection.
type MongoSource struct {
	coll   *mongo.Collection
	owned  bool
	logger *zap.Logger
}

// NewMongoSource wraps an existing collection. The caller keeps ownership of
// the client.
func NewMongoSource(coll *mongo.Collection, logger *zap.Logger) *MongoSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MongoSource{coll: coll, logger: logger}
}

// Connect opens a client using the Stable API, confirms the deployment
// answers a ping and returns a source for database.collection. Close
// disconnects the client.
func Connect(ctx context.Context, uri, database, collection string, logger *zap.Logger) (*MongoSource, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	s := NewMongoSource(client.Database(database).Collection(collection), logger)
	s.owned = true

	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	s.logger.Info("Connected to MongoDB",
		zap.String("database", database),
		zap.String("collection", collection))
	return s, nil
}

// Ping runs the ping command against the admin database.
func (s *MongoSource) Ping(ctx context.Context) error {
	admin := s.coll.Database().Client().Database("admin")
	if err := admin.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return nil
}

// Movies runs q against the collection. Every returned document becomes a
// Movie, malformed ones included, so the result length always matches the
// number of documents read.
func (s *MongoSource) Movies(ctx context.Context, q Query) ([]movie.Movie, error) {
	cursor, err := s.coll.Find(ctx, q.Filter())
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := []movie.Movie{}
	for cursor.Next(ctx) {
		movies = append(movies, movie.FromRaw(cursor.Current))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movies: %w", err)
	}

	s.logger.Debug("Fetched movies",
		zap.Int("year", q.Year),
		zap.Int("count", len(movies)))
	return movies, nil
}

// Close disconnects the client if this source opened it.
func (s *MongoSource) Close(ctx context.Context) error {
	if !s.owned {
		return nil
	}
	if err := s.coll.Database().Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
