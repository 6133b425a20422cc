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

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog *models.Blog) error
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	GetAllBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlogsByIDs(ctx context.Context, ids []string) ([]models.Blog, error)
	UpdateBlog(ctx context.Context, id string, blog *models.Blog) error
	GetRecentBlogs(ctx context.Context, limit int64) ([]models.Blog, error)
	GetFeaturedBlogs(ctx context.Context, limit int64) ([]models.Blog, error)
	TextSearch(ctx context.Context, query string) ([]models.Blog, error)
	RegexSearch(ctx context.Context, pattern string) ([]models.Blog, error)
	AddLike(ctx context.Context, blogID, userID string) error
	RemoveLike(ctx context.Context, blogID, userID string) error
	GetBlogsMissingWordCount(ctx context.Context) ([]models.Blog, error)
	SetWordCount(ctx context.Context, id string, wordCount int) error
}

// MongoBlogRepository implements BlogRepository for MongoDB
type MongoBlogRepository struct {
	collection *mongo.Collection
}

// NewMongoBlogRepository creates a new MongoBlogRepository
func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{collection: db.Collection("blogs")}
}

// EnsureIndexes creates the language-aware text index the ranked search
// path relies on. Title outweighs the secondary fields so title hits
// rank first.
func (r *MongoBlogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "shortDescription", Value: "text"},
			{Key: "tags", Value: "text"},
		},
		Options: options.Index().
			SetName("blog_text_search").
			SetWeights(bson.D{
				{Key: "title", Value: 10},
				{Key: "shortDescription", Value: 4},
				{Key: "tags", Value: 2},
			}),
	})
	return err
}

// CreateBlog creates a new blog in MongoDB
func (r *MongoBlogRepository) CreateBlog(ctx context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now()
	if blog.Likes == nil {
		blog.Likes = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, blog); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// GetBlogByID retrieves a blog by ID from MongoDB
func (r *MongoBlogRepository) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.InvalidRequest("invalid blog ID format")
	}

	var blog models.Blog
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("blog", id)
		}
		return nil, apperrors.Store(err)
	}
	return &blog, nil
}

// GetAllBlogs retrieves every blog in the store's natural order
func (r *MongoBlogRepository) GetAllBlogs(ctx context.Context) ([]models.Blog, error) {
	return r.find(ctx, bson.D{}, nil)
}

// GetBlogsByIDs retrieves the blogs whose IDs appear in ids. IDs that do
// not resolve to a document are skipped, not errors.
func (r *MongoBlogRepository) GetBlogsByIDs(ctx context.Context, ids []string) ([]models.Blog, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}
	if len(objIDs) == 0 {
		return []models.Blog{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": objIDs}}, nil)
}

// UpdateBlog replaces the updatable fields of an existing blog
func (r *MongoBlogRepository) UpdateBlog(ctx context.Context, id string, blog *models.Blog) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.InvalidRequest("invalid blog ID format")
	}

	update := bson.M{
		"$set": bson.M{
			"title":            blog.Title,
			"shortDescription": blog.ShortDescription,
			"tags":             blog.Tags,
			"content":          blog.Content,
			"wordCount":        blog.WordCount,
			"image":            blog.Image,
			"author":           blog.Author,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return apperrors.Store(err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("blog", id)
	}
	return nil
}

// GetRecentBlogs retrieves the latest blogs by creation time
func (r *MongoBlogRepository) GetRecentBlogs(ctx context.Context, limit int64) ([]models.Blog, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	return r.find(ctx, bson.D{}, findOptions)
}

// GetFeaturedBlogs retrieves the longest blogs by derived word count
func (r *MongoBlogRepository) GetFeaturedBlogs(ctx context.Context, limit int64) ([]models.Blog, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "wordCount", Value: -1}}).SetLimit(limit)
	return r.find(ctx, bson.D{}, findOptions)
}

// TextSearch runs a ranked full-text match against the text index,
// ordered by descending relevance score.
func (r *MongoBlogRepository) TextSearch(ctx context.Context, query string) ([]models.Blog, error) {
	filter := bson.M{"$text": bson.M{"$search": query}}
	findOptions := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	return r.find(ctx, filter, findOptions)
}

// RegexSearch runs an unranked case-insensitive pattern match over
// title, shortDescription and tags.
func (r *MongoBlogRepository) RegexSearch(ctx context.Context, pattern string) ([]models.Blog, error) {
	regex := primitive.Regex{Pattern: pattern, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": regex},
		{"shortDescription": regex},
		{"tags": regex},
	}}
	return r.find(ctx, filter, nil)
}

// AddLike adds userID to the blog's likes set. Set semantics: a user
// already present is not inserted twice.
func (r *MongoBlogRepository) AddLike(ctx context.Context, blogID, userID string) error {
	objID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return apperrors.InvalidRequest("invalid blog ID format")
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$addToSet": bson.M{"likes": userID}})
	if err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// RemoveLike removes userID from the blog's likes set. Absence is not an
// error.
func (r *MongoBlogRepository) RemoveLike(ctx context.Context, blogID, userID string) error {
	objID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return apperrors.InvalidRequest("invalid blog ID format")
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$pull": bson.M{"likes": userID}})
	if err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// GetBlogsMissingWordCount retrieves blogs persisted before the word
// count field existed.
func (r *MongoBlogRepository) GetBlogsMissingWordCount(ctx context.Context) ([]models.Blog, error) {
	return r.find(ctx, bson.M{"wordCount": bson.M{"$exists": false}}, nil)
}

// SetWordCount backfills the derived word count on a single blog.
func (r *MongoBlogRepository) SetWordCount(ctx context.Context, id string, wordCount int) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.InvalidRequest("invalid blog ID format")
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"wordCount": wordCount}})
	if err != nil {
		return apperrors.Store(err)
	}
	return nil
}

func (r *MongoBlogRepository) find(ctx context.Context, filter interface{}, findOptions *options.FindOptions) ([]models.Blog, error) {
	var blogs []models.Blog
	var cursor *mongo.Cursor
	var err error
	if findOptions != nil {
		cursor, err = r.collection.Find(ctx, filter, findOptions)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, apperrors.Store(err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &blogs); err != nil {
		return nil, apperrors.Store(err)
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	return blogs, nil
}
