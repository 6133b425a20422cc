package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/internal/repositories"
	"github.com/blogify-app/backend/internal/services"
	"github.com/blogify-app/backend/pkg/apperrors"
	"github.com/blogify-app/backend/pkg/media"
)

// recentBlogLimit and featuredBlogLimit size the two landing-page feeds.
const (
	recentBlogLimit   = 6
	featuredBlogLimit = 10
)

// MediaUploader is the slice of the media host client the blog handler
// needs.
type MediaUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, publicID string) error
}

// BlogHandler handles HTTP requests related to blogs
type BlogHandler struct {
	blogRepository repositories.BlogRepository
	searchService  *services.SearchService
	mediaUploader  MediaUploader
	logg           zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogRepo repositories.BlogRepository, searchSvc *services.SearchService, uploader MediaUploader, logg zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		blogRepository: blogRepo,
		searchService:  searchSvc,
		mediaUploader:  uploader,
		logg:           logg,
	}
}

// RegisterPublicRoutes registers blog routes that need no authentication
func (h *BlogHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/blogs", h.SearchBlogs)
	g.GET("/recentBlogs", h.GetRecentBlogs)
	g.GET("/featuredBlogs", h.GetFeaturedBlogs)
}

// RegisterProtectedRoutes registers blog routes behind token auth
func (h *BlogHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/blogs", h.CreateBlog)
	g.GET("/blogs/:id", h.GetBlog)
	g.PUT("/blogs/:id", h.UpdateBlog)
}

// SearchBlogs resolves the optional free-text search query
func (h *BlogHandler) SearchBlogs(c echo.Context) error {
	blogs, err := h.searchService.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// GetBlog retrieves a blog by ID
func (h *BlogHandler) GetBlog(c echo.Context) error {
	blog, err := h.blogRepository.GetBlogByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// GetRecentBlogs returns the latest blogs by creation time
func (h *BlogHandler) GetRecentBlogs(c echo.Context) error {
	blogs, err := h.blogRepository.GetRecentBlogs(c.Request().Context(), recentBlogLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// GetFeaturedBlogs returns the longest blogs by word count
func (h *BlogHandler) GetFeaturedBlogs(c echo.Context) error {
	blogs, err := h.blogRepository.GetFeaturedBlogs(c.Request().Context(), featuredBlogLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// CreateBlog creates a new blog, uploading the optional cover image to
// the media host first
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	var req models.CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.InvalidRequest("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	imageURL, err := h.uploadImageIfPresent(c)
	if err != nil {
		return err
	}

	blog := &models.Blog{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Tags:             req.Tags,
		Content:          req.Content,
		WordCount:        models.CountWords(req.Content),
		Image:            imageURL,
		Author: models.Author{
			Name:  req.AuthorName,
			Email: req.AuthorEmail,
			Photo: req.AuthorPhoto,
		},
		Likes: []string{},
	}

	if err := h.blogRepository.CreateBlog(c.Request().Context(), blog); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, blog)
}

// UpdateBlog replaces the updatable fields of an existing blog. A new
// cover image replaces the old one on the media host.
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	blogID := c.Param("id")

	var req models.UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.InvalidRequest("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	existing, err := h.blogRepository.GetBlogByID(c.Request().Context(), blogID)
	if err != nil {
		return err
	}

	if req.Title != "" {
		existing.Title = req.Title
	}
	if req.ShortDescription != "" {
		existing.ShortDescription = req.ShortDescription
	}
	if req.Tags != nil {
		existing.Tags = req.Tags
	}
	if req.Content != "" {
		existing.Content = req.Content
		existing.WordCount = models.CountWords(req.Content)
	}
	if req.AuthorName != "" {
		existing.Author.Name = req.AuthorName
	}
	if req.AuthorEmail != "" {
		existing.Author.Email = req.AuthorEmail
	}
	if req.AuthorPhoto != "" {
		existing.Author.Photo = req.AuthorPhoto
	}

	newImageURL, err := h.uploadImageIfPresent(c)
	if err != nil {
		return err
	}
	oldImageURL := existing.Image
	if newImageURL != "" {
		existing.Image = newImageURL
	}

	if err := h.blogRepository.UpdateBlog(c.Request().Context(), blogID, existing); err != nil {
		return err
	}

	if newImageURL != "" && oldImageURL != "" {
		h.deleteOldImage(c.Request().Context(), oldImageURL)
	}

	return c.JSON(http.StatusOK, existing)
}

// uploadImageIfPresent uploads the optional "image" form file and
// returns its durable URL, or "" when no file was sent.
func (h *BlogHandler) uploadImageIfPresent(c echo.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Missing file and non-multipart bodies both mean no image was sent.
		return "", nil
	}
	return h.uploadImage(c.Request().Context(), fileHeader)
}

func (h *BlogHandler) uploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.InvalidRequest("could not read uploaded image")
	}
	defer file.Close()

	url, err := h.mediaUploader.Upload(ctx, fileHeader.Filename, file)
	if err != nil {
		return "", apperrors.Store(err)
	}
	return url, nil
}

// deleteOldImage is best effort; a stale image on the media host is not
// worth failing the update over.
func (h *BlogHandler) deleteOldImage(ctx context.Context, imageURL string) {
	publicID, err := media.PublicIDFromURL(imageURL)
	if err != nil {
		h.logg.Warn().Str("url", imageURL).Err(err).Msg("could not parse public id from old image url")
		return
	}
	if err := h.mediaUploader.Delete(ctx, publicID); err != nil {
		h.logg.Warn().Str("publicId", publicID).Err(err).Msg("failed to delete old image from media host")
	}
}
