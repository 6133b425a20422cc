package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/internal/repositories"
	"github.com/blogify-app/backend/pkg/apperrors"
)

// ToggleResult reports which direction a toggle took. Exactly one field
// is set.
type ToggleResult struct {
	Added   bool `json:"added,omitempty"`
	Removed bool `json:"removed,omitempty"`
}

// WishlistService flips the wishlist relationship for a (user, blog)
// pair and keeps the blog's likes set consistent with it.
type WishlistService struct {
	wishlistRepository repositories.WishlistRepository
	blogRepository     repositories.BlogRepository
	logg               zerolog.Logger
}

// NewWishlistService creates a new WishlistService
func NewWishlistService(wishlistRepo repositories.WishlistRepository, blogRepo repositories.BlogRepository, logg zerolog.Logger) *WishlistService {
	return &WishlistService{
		wishlistRepository: wishlistRepo,
		blogRepository:     blogRepo,
		logg:               logg,
	}
}

// Toggle adds the wishlist entry for (userID, blogID) when absent and
// removes it when present, then mirrors the change into the blog's likes
// set. The entry mutation always runs first; if the likes mutation fails
// the entry mutation is reverted so the two aggregates do not drift.
func (s *WishlistService) Toggle(ctx context.Context, userID, blogID string) (*ToggleResult, error) {
	userID = strings.TrimSpace(userID)
	blogID = strings.TrimSpace(blogID)
	if userID == "" {
		return nil, apperrors.InvalidRequest("userId is required")
	}
	if blogID == "" {
		return nil, apperrors.InvalidRequest("blogId is required")
	}
	if _, err := primitive.ObjectIDFromHex(blogID); err != nil {
		return nil, apperrors.InvalidRequest("invalid blog ID format")
	}

	removed, err := s.wishlistRepository.DeleteEntry(ctx, userID, blogID)
	if err != nil {
		return nil, err
	}

	if removed {
		if err := s.blogRepository.RemoveLike(ctx, blogID, userID); err != nil {
			s.compensateRemoval(ctx, userID, blogID)
			return nil, err
		}
		return &ToggleResult{Removed: true}, nil
	}

	// Adding requires a live blog; removal above stays tolerant so
	// entries pointing at deleted blogs can still be toggled away.
	if _, err := s.blogRepository.GetBlogByID(ctx, blogID); err != nil {
		return nil, err
	}
	if _, err := s.wishlistRepository.InsertEntry(ctx, userID, blogID); err != nil {
		return nil, err
	}
	if err := s.blogRepository.AddLike(ctx, blogID, userID); err != nil {
		s.compensateAddition(ctx, userID, blogID)
		return nil, err
	}
	return &ToggleResult{Added: true}, nil
}

// ListWishlisted returns the blogs a user has wishlisted. Entries whose
// blog no longer exists are skipped.
func (s *WishlistService) ListWishlisted(ctx context.Context, userID string) ([]models.Blog, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperrors.InvalidRequest("userId is required")
	}

	entries, err := s.wishlistRepository.GetEntriesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []models.Blog{}, nil
	}

	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.BlogID
	}
	return s.blogRepository.GetBlogsByIDs(ctx, ids)
}

func (s *WishlistService) compensateRemoval(ctx context.Context, userID, blogID string) {
	if _, err := s.wishlistRepository.InsertEntry(ctx, userID, blogID); err != nil {
		s.logg.Error().Err(err).
			Str("userId", userID).
			Str("blogId", blogID).
			Msg("failed to restore wishlist entry after likes update failure; reconciliation sweep will repair")
	}
}

func (s *WishlistService) compensateAddition(ctx context.Context, userID, blogID string) {
	if _, err := s.wishlistRepository.DeleteEntry(ctx, userID, blogID); err != nil {
		s.logg.Error().Err(err).
			Str("userId", userID).
			Str("blogId", blogID).
			Msg("failed to revert wishlist entry after likes update failure; reconciliation sweep will repair")
	}
}
