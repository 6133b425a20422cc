package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/internal/repositories"
	"github.com/blogify-app/backend/pkg/apperrors"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	blogRepository    repositories.BlogRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, blogRepo repositories.BlogRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		blogRepository:    blogRepo,
	}
}

// RegisterPublicRoutes registers comment routes that need no authentication
func (h *CommentHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/comments/:blogId", h.GetCommentsByBlogID)
}

// RegisterProtectedRoutes registers comment routes behind token auth
func (h *CommentHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/comments", h.CreateComment)
}

// CreateComment appends a new comment to a blog
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.InvalidRequest("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Structural ID validation happens before any store access.
	if _, err := primitive.ObjectIDFromHex(req.BlogID); err != nil {
		return apperrors.InvalidRequest("invalid blog ID format")
	}

	// Verify the blog exists
	if _, err := h.blogRepository.GetBlogByID(c.Request().Context(), req.BlogID); err != nil {
		return err
	}

	comment := &models.Comment{
		BlogID:    req.BlogID,
		Text:      req.Text,
		UserName:  req.UserName,
		UserImage: req.UserImage,
	}

	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByBlogID retrieves all comments for a blog, newest first
func (h *CommentHandler) GetCommentsByBlogID(c echo.Context) error {
	blogID := c.Param("blogId")
	if _, err := primitive.ObjectIDFromHex(blogID); err != nil {
		return apperrors.InvalidRequest("invalid blog ID format")
	}

	comments, err := h.commentRepository.GetCommentsByBlogID(c.Request().Context(), blogID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, comments)
}
