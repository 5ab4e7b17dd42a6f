package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Repository persists and looks up booking pages. Pages are created and
// read, never updated or deleted.
type Repository interface {
	// Insert stores a new page. It returns ErrSlugTaken when a page with
	// the same slug already exists; it must never overwrite one.
	Insert(ctx context.Context, page *Page) error

	// FindBySlug returns the page with the given slug or ErrNotFound.
	FindBySlug(ctx context.Context, slug string) (*Page, error)

	// SlugExists reports whether a page with the given slug exists.
	SlugExists(ctx context.Context, slug string) (bool, error)
}

const collectionName = "bookings"

// MongoRepository is the MongoDB-backed Repository.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository returns a repository over the "bookings" collection
// and ensures the unique index on "slug" that guards slug allocation
// against concurrent submissions.
func NewMongoRepository(ctx context.Context, db *mongo.Database) (*MongoRepository, error) {
	col := db.Collection(collectionName)

	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, fmt.Errorf("create unique slug index: %w", err)
	}

	return &MongoRepository{col: col}, nil
}

func (r *MongoRepository) Insert(ctx context.Context, page *Page) error {
	if _, err := r.col.InsertOne(ctx, page); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("insert booking page: %w", err)
	}
	return nil
}

func (r *MongoRepository) FindBySlug(ctx context.Context, slug string) (*Page, error) {
	var page Page
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&page); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find booking page by slug: %w", err)
	}
	return &page, nil
}

func (r *MongoRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count pages by slug: %w", err)
	}
	return n > 0, nil
}
