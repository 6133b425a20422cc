package services

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/pkg/apperrors"
)

// fakeBlogRepo is an in-memory BlogRepository. Text search approximates
// the store's language-aware index with whole-word matching; regex
// search behaves like the store's case-insensitive pattern match.
type fakeBlogRepo struct {
	blogs            []*models.Blog
	missingWordCount map[string]bool

	textQueries   []string
	regexPatterns []string

	addLikeErr    error
	removeLikeErr error
	findErr       error
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{missingWordCount: map[string]bool{}}
}

func (f *fakeBlogRepo) addBlog(title, shortDescription string, tags []string, content string) *models.Blog {
	blog := &models.Blog{
		ID:               primitive.NewObjectID(),
		Title:            title,
		ShortDescription: shortDescription,
		Tags:             tags,
		Content:          content,
		WordCount:        models.CountWords(content),
		Likes:            []string{},
	}
	f.blogs = append(f.blogs, blog)
	return blog
}

func (f *fakeBlogRepo) get(id string) *models.Blog {
	for _, blog := range f.blogs {
		if blog.ID.Hex() == id {
			return blog
		}
	}
	return nil
}

func (f *fakeBlogRepo) CreateBlog(ctx context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	f.blogs = append(f.blogs, blog)
	return nil
}

func (f *fakeBlogRepo) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperrors.InvalidRequest("invalid blog ID format")
	}
	if blog := f.get(id); blog != nil {
		return blog, nil
	}
	return nil, apperrors.NotFound("blog", id)
}

func (f *fakeBlogRepo) GetAllBlogs(ctx context.Context) ([]models.Blog, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.copyOf(f.blogs), nil
}

func (f *fakeBlogRepo) GetBlogsByIDs(ctx context.Context, ids []string) ([]models.Blog, error) {
	var matched []*models.Blog
	for _, id := range ids {
		if blog := f.get(id); blog != nil {
			matched = append(matched, blog)
		}
	}
	return f.copyOf(matched), nil
}

func (f *fakeBlogRepo) UpdateBlog(ctx context.Context, id string, blog *models.Blog) error {
	existing := f.get(id)
	if existing == nil {
		return apperrors.NotFound("blog", id)
	}
	*existing = *blog
	return nil
}

func (f *fakeBlogRepo) GetRecentBlogs(ctx context.Context, limit int64) ([]models.Blog, error) {
	sorted := append([]*models.Blog(nil), f.blogs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	return f.copyOf(sorted), nil
}

func (f *fakeBlogRepo) GetFeaturedBlogs(ctx context.Context, limit int64) ([]models.Blog, error) {
	sorted := append([]*models.Blog(nil), f.blogs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].WordCount > sorted[j].WordCount })
	if int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	return f.copyOf(sorted), nil
}

func (f *fakeBlogRepo) TextSearch(ctx context.Context, query string) ([]models.Blog, error) {
	f.textQueries = append(f.textQueries, query)
	if f.findErr != nil {
		return nil, f.findErr
	}
	var matched []*models.Blog
	for _, blog := range f.blogs {
		if f.wordMatch(blog, query) {
			matched = append(matched, blog)
		}
	}
	return f.copyOf(matched), nil
}

func (f *fakeBlogRepo) RegexSearch(ctx context.Context, pattern string) ([]models.Blog, error) {
	f.regexPatterns = append(f.regexPatterns, pattern)
	if f.findErr != nil {
		return nil, f.findErr
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	var matched []*models.Blog
	for _, blog := range f.blogs {
		if re.MatchString(blog.Title) || re.MatchString(blog.ShortDescription) || re.MatchString(strings.Join(blog.Tags, " ")) {
			matched = append(matched, blog)
		}
	}
	return f.copyOf(matched), nil
}

func (f *fakeBlogRepo) AddLike(ctx context.Context, blogID, userID string) error {
	if f.addLikeErr != nil {
		return f.addLikeErr
	}
	blog := f.get(blogID)
	if blog == nil {
		return nil
	}
	for _, existing := range blog.Likes {
		if existing == userID {
			return nil
		}
	}
	blog.Likes = append(blog.Likes, userID)
	return nil
}

func (f *fakeBlogRepo) RemoveLike(ctx context.Context, blogID, userID string) error {
	if f.removeLikeErr != nil {
		return f.removeLikeErr
	}
	blog := f.get(blogID)
	if blog == nil {
		return nil
	}
	kept := blog.Likes[:0]
	for _, existing := range blog.Likes {
		if existing != userID {
			kept = append(kept, existing)
		}
	}
	blog.Likes = kept
	return nil
}

func (f *fakeBlogRepo) GetBlogsMissingWordCount(ctx context.Context) ([]models.Blog, error) {
	var missing []*models.Blog
	for _, blog := range f.blogs {
		if f.missingWordCount[blog.ID.Hex()] {
			missing = append(missing, blog)
		}
	}
	return f.copyOf(missing), nil
}

func (f *fakeBlogRepo) SetWordCount(ctx context.Context, id string, wordCount int) error {
	blog := f.get(id)
	if blog == nil {
		return apperrors.NotFound("blog", id)
	}
	blog.WordCount = wordCount
	delete(f.missingWordCount, id)
	return nil
}

func (f *fakeBlogRepo) wordMatch(blog *models.Blog, query string) bool {
	indexed := strings.Fields(strings.ToLower(blog.Title))
	indexed = append(indexed, strings.Fields(strings.ToLower(blog.ShortDescription))...)
	for _, tag := range blog.Tags {
		indexed = append(indexed, strings.ToLower(tag))
	}
	for _, term := range strings.Fields(strings.ToLower(query)) {
		for _, word := range indexed {
			if word == term {
				return true
			}
		}
	}
	return false
}

func (f *fakeBlogRepo) copyOf(blogs []*models.Blog) []models.Blog {
	out := make([]models.Blog, len(blogs))
	for i, blog := range blogs {
		out[i] = *blog
	}
	return out
}

// fakeWishlistRepo is an in-memory WishlistRepository keyed on the
// (userId, blogId) pair.
type fakeWishlistRepo struct {
	entries map[string]bool

	insertErr error
	deleteErr error
	listErr   error
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: map[string]bool{}}
}

func entryKey(userID, blogID string) string {
	return userID + "|" + blogID
}

func (f *fakeWishlistRepo) has(userID, blogID string) bool {
	return f.entries[entryKey(userID, blogID)]
}

func (f *fakeWishlistRepo) InsertEntry(ctx context.Context, userID, blogID string) (bool, error) {
	if f.insertErr != nil {
		return false, f.insertErr
	}
	key := entryKey(userID, blogID)
	if f.entries[key] {
		return false, nil
	}
	f.entries[key] = true
	return true, nil
}

func (f *fakeWishlistRepo) DeleteEntry(ctx context.Context, userID, blogID string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	key := entryKey(userID, blogID)
	if !f.entries[key] {
		return false, nil
	}
	delete(f.entries, key)
	return true, nil
}

func (f *fakeWishlistRepo) GetEntriesByUserID(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.WishlistEntry
	for key := range f.entries {
		parts := strings.SplitN(key, "|", 2)
		if parts[0] == userID {
			out = append(out, models.WishlistEntry{UserID: parts[0], BlogID: parts[1]})
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) GetAllEntries(ctx context.Context) ([]models.WishlistEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.WishlistEntry
	for key := range f.entries {
		parts := strings.SplitN(key, "|", 2)
		out = append(out, models.WishlistEntry{UserID: parts[0], BlogID: parts[1]})
	}
	return out, nil
}
