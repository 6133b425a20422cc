package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/pkg/apperrors"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByBlogID(ctx context.Context, blogID string) ([]models.Comment, error)
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

// CreateComment appends a new comment. The ID and timestamp are assigned
// here; whatever the client sent for either is discarded upstream.
func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.PostedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// GetCommentsByBlogID retrieves all comments for a blog, newest first
func (r *MongoCommentRepository) GetCommentsByBlogID(ctx context.Context, blogID string) ([]models.Comment, error) {
	var comments []models.Comment
	findOptions := options.Find().SetSort(bson.D{{Key: "postedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"blogId": blogID}, findOptions)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &comments); err != nil {
		return nil, apperrors.Store(err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}
