package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/pkg/apperrors"
)

// WishlistRepository defines the interface for wishlist entry operations.
// Entries are only ever created or deleted, never updated, and both
// mutations are atomic conditional operations on the (userId, blogId)
// pair so concurrent toggles cannot race each other.
type WishlistRepository interface {
	// InsertEntry inserts the entry if no entry exists for the pair.
	// Reports whether this call created it.
	InsertEntry(ctx context.Context, userID, blogID string) (bool, error)
	// DeleteEntry deletes the entry for the pair if one exists.
	// Reports whether an entry was present.
	DeleteEntry(ctx context.Context, userID, blogID string) (bool, error)
	GetEntriesByUserID(ctx context.Context, userID string) ([]models.WishlistEntry, error)
	GetAllEntries(ctx context.Context) ([]models.WishlistEntry, error)
}

// MongoWishlistRepository implements WishlistRepository for MongoDB
type MongoWishlistRepository struct {
	collection *mongo.Collection
}

// NewMongoWishlistRepository creates a new MongoWishlistRepository
func NewMongoWishlistRepository(db *mongo.Database) *MongoWishlistRepository {
	return &MongoWishlistRepository{collection: db.Collection("wishlists")}
}

// EnsureIndexes creates the unique compound index that makes the
// (userId, blogId) pair a real uniqueness key.
func (r *MongoWishlistRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "blogId", Value: 1},
		},
		Options: options.Index().SetName("wishlist_user_blog").SetUnique(true),
	})
	return err
}

// InsertEntry upserts with $setOnInsert so two concurrent adds for the
// same pair result in exactly one entry.
func (r *MongoWishlistRepository) InsertEntry(ctx context.Context, userID, blogID string) (bool, error) {
	filter := bson.M{"userId": userID, "blogId": blogID}
	update := bson.M{"$setOnInsert": bson.M{"userId": userID, "blogId": blogID}}
	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, apperrors.Store(err)
	}
	return res.UpsertedCount == 1, nil
}

// DeleteEntry removes the entry for the pair and reports prior presence.
func (r *MongoWishlistRepository) DeleteEntry(ctx context.Context, userID, blogID string) (bool, error) {
	filter := bson.M{"userId": userID, "blogId": blogID}
	err := r.collection.FindOneAndDelete(ctx, filter).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, apperrors.Store(err)
	}
	return true, nil
}

// GetEntriesByUserID retrieves all wishlist entries for a user
func (r *MongoWishlistRepository) GetEntriesByUserID(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// GetAllEntries retrieves every wishlist entry, used by the
// reconciliation sweep.
func (r *MongoWishlistRepository) GetAllEntries(ctx context.Context) ([]models.WishlistEntry, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoWishlistRepository) find(ctx context.Context, filter interface{}) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, apperrors.Store(err)
	}
	if entries == nil {
		entries = []models.WishlistEntry{}
	}
	return entries, nil
}
