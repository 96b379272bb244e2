package source

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/errors"
)

// Default names used when the config leaves them empty.
const (
	defaultMongoDatabase   = "vitrine"
	defaultMongoCollection = "pages"
)

// MongoSource loads a model from a MongoDB collection maintained by an
// external content-management system. Each document in the collection is
// one page model, keyed by its "slug" field.
type MongoSource struct {
	uri        string
	database   string
	collection string
	page       string
}

// NewMongoSource creates a source for the given connection settings.
func NewMongoSource(cfg Config) *MongoSource {
	db := cfg.Database
	if db == "" {
		db = defaultMongoDatabase
	}
	coll := cfg.Collection
	if coll == "" {
		coll = defaultMongoCollection
	}
	return &MongoSource{
		uri:        cfg.URI,
		database:   db,
		collection: coll,
		page:       cfg.Page,
	}
}

// Load connects, fetches the page document, and finalizes the model.
// The connection lives only for the duration of the load; serving traffic
// from MongoDB is not this tool's job.
func (s *MongoSource) Load(ctx context.Context) (*content.Model, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, err, "connect to %s", s.uri)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	filter := bson.M{}
	if s.page != "" {
		filter = bson.M{"slug": s.page}
	}

	var m content.Model
	err = client.Database(s.database).Collection(s.collection).FindOne(ctx, filter).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeContentNotFound, "no page document in %s.%s matching %q",
			s.database, s.collection, s.page)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, err, "fetch page from %s.%s", s.database, s.collection)
	}

	return finalize(&m)
}

// String identifies the collection without leaking credentials from the URI.
func (s *MongoSource) String() string {
	return fmt.Sprintf("mongo:%s.%s/%s", s.database, s.collection, s.page)
}
