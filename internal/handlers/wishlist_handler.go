package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/internal/services"
	"github.com/blogify-app/backend/pkg/apperrors"
)

// WishlistHandler handles HTTP requests related to wishlists
type WishlistHandler struct {
	wishlistService *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlistSvc *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistSvc}
}

// RegisterProtectedRoutes registers wishlist routes behind token auth
func (h *WishlistHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/wishlists", h.ToggleWishlist)
	g.GET("/wishlistedBlogs", h.GetWishlistedBlogs)
}

// ToggleWishlist flips the wishlist state for a (user, blog) pair
func (h *WishlistHandler) ToggleWishlist(c echo.Context) error {
	var req models.ToggleWishlistRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.InvalidRequest("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.wishlistService.Toggle(c.Request().Context(), req.UserID, req.BlogID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// GetWishlistedBlogs lists the blogs a user has wishlisted
func (h *WishlistHandler) GetWishlistedBlogs(c echo.Context) error {
	blogs, err := h.wishlistService.ListWishlisted(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blogs)
}
