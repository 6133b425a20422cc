package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WishlistEntry is a join record expressing a user's interest in a blog.
// The (userId, blogId) pair is the real key; at most one entry exists per
// pair, enforced by a unique index.
type WishlistEntry struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID string             `json:"userId" bson:"userId"`
	BlogID string             `json:"blogId" bson:"blogId"`
}

// ToggleWishlistRequest defines the request body for toggling a wishlist entry
type ToggleWishlistRequest struct {
	UserID string `json:"userId" validate:"required"`
	BlogID string `json:"blogId" validate:"required"`
}
