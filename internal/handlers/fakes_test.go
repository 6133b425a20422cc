package handlers_test

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/internal/router"
	"github.com/blogify-app/backend/pkg/apperrors"
	"github.com/blogify-app/backend/validators"
)

// newTestEcho builds an echo instance with the production validator and
// error handler wired in.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = router.NewHTTPErrorHandler(zerolog.New(io.Discard))
	return e
}

type stubBlogRepo struct {
	blogs map[string]*models.Blog
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{blogs: map[string]*models.Blog{}}
}

func (s *stubBlogRepo) addBlog(title string, createdAt time.Time, wordCount int) *models.Blog {
	blog := &models.Blog{
		ID:        primitive.NewObjectID(),
		Title:     title,
		WordCount: wordCount,
		Likes:     []string{},
		CreatedAt: createdAt,
	}
	s.blogs[blog.ID.Hex()] = blog
	return blog
}

func (s *stubBlogRepo) CreateBlog(ctx context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now()
	s.blogs[blog.ID.Hex()] = blog
	return nil
}

func (s *stubBlogRepo) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperrors.InvalidRequest("invalid blog ID format")
	}
	if blog, ok := s.blogs[id]; ok {
		return blog, nil
	}
	return nil, apperrors.NotFound("blog", id)
}

func (s *stubBlogRepo) GetAllBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.collect(func(*models.Blog) bool { return true }, 0, nil), nil
}

func (s *stubBlogRepo) GetBlogsByIDs(ctx context.Context, ids []string) ([]models.Blog, error) {
	out := []models.Blog{}
	for _, id := range ids {
		if blog, ok := s.blogs[id]; ok {
			out = append(out, *blog)
		}
	}
	return out, nil
}

func (s *stubBlogRepo) UpdateBlog(ctx context.Context, id string, blog *models.Blog) error {
	existing, ok := s.blogs[id]
	if !ok {
		return apperrors.NotFound("blog", id)
	}
	*existing = *blog
	return nil
}

func (s *stubBlogRepo) GetRecentBlogs(ctx context.Context, limit int64) ([]models.Blog, error) {
	return s.collect(func(*models.Blog) bool { return true }, limit, func(a, b *models.Blog) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}

func (s *stubBlogRepo) GetFeaturedBlogs(ctx context.Context, limit int64) ([]models.Blog, error) {
	return s.collect(func(*models.Blog) bool { return true }, limit, func(a, b *models.Blog) bool {
		return a.WordCount > b.WordCount
	}), nil
}

func (s *stubBlogRepo) TextSearch(ctx context.Context, query string) ([]models.Blog, error) {
	return []models.Blog{}, nil
}

func (s *stubBlogRepo) RegexSearch(ctx context.Context, pattern string) ([]models.Blog, error) {
	return []models.Blog{}, nil
}

func (s *stubBlogRepo) AddLike(ctx context.Context, blogID, userID string) error    { return nil }
func (s *stubBlogRepo) RemoveLike(ctx context.Context, blogID, userID string) error { return nil }

func (s *stubBlogRepo) GetBlogsMissingWordCount(ctx context.Context) ([]models.Blog, error) {
	return []models.Blog{}, nil
}

func (s *stubBlogRepo) SetWordCount(ctx context.Context, id string, wordCount int) error {
	return nil
}

func (s *stubBlogRepo) collect(keep func(*models.Blog) bool, limit int64, less func(a, b *models.Blog) bool) []models.Blog {
	var ptrs []*models.Blog
	for _, blog := range s.blogs {
		if keep(blog) {
			ptrs = append(ptrs, blog)
		}
	}
	if less != nil {
		sort.Slice(ptrs, func(i, j int) bool { return less(ptrs[i], ptrs[j]) })
	}
	if limit > 0 && int64(len(ptrs)) > limit {
		ptrs = ptrs[:limit]
	}
	out := make([]models.Blog, len(ptrs))
	for i, blog := range ptrs {
		out[i] = *blog
	}
	return out
}

type stubCommentRepo struct {
	comments  []models.Comment
	createErr error
}

func (s *stubCommentRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	if s.createErr != nil {
		return s.createErr
	}
	comment.ID = primitive.NewObjectID()
	comment.PostedAt = time.Now()
	s.comments = append(s.comments, *comment)
	return nil
}

func (s *stubCommentRepo) GetCommentsByBlogID(ctx context.Context, blogID string) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, comment := range s.comments {
		if comment.BlogID == blogID {
			out = append(out, comment)
		}
	}
	return out, nil
}

type stubWishlistRepo struct {
	entries map[string]bool
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{entries: map[string]bool{}}
}

func (s *stubWishlistRepo) key(userID, blogID string) string { return userID + "|" + blogID }

func (s *stubWishlistRepo) InsertEntry(ctx context.Context, userID, blogID string) (bool, error) {
	key := s.key(userID, blogID)
	if s.entries[key] {
		return false, nil
	}
	s.entries[key] = true
	return true, nil
}

func (s *stubWishlistRepo) DeleteEntry(ctx context.Context, userID, blogID string) (bool, error) {
	key := s.key(userID, blogID)
	if !s.entries[key] {
		return false, nil
	}
	delete(s.entries, key)
	return true, nil
}

func (s *stubWishlistRepo) GetEntriesByUserID(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
	out := []models.WishlistEntry{}
	for key := range s.entries {
		for i := 0; i < len(key); i++ {
			if key[i] == '|' {
				if key[:i] == userID {
					out = append(out, models.WishlistEntry{UserID: key[:i], BlogID: key[i+1:]})
				}
				break
			}
		}
	}
	return out, nil
}

func (s *stubWishlistRepo) GetAllEntries(ctx context.Context) ([]models.WishlistEntry, error) {
	return nil, nil
}

type stubUploader struct {
	uploads int
	deletes []string
	url     string
}

func (s *stubUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	s.uploads++
	if s.url != "" {
		return s.url, nil
	}
	return "https://media.example.com/image/upload/v1/generated.jpg", nil
}

func (s *stubUploader) Delete(ctx context.Context, publicID string) error {
	s.deletes = append(s.deletes, publicID)
	return nil
}
