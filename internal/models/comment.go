package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a blog. Comments reference blogs by ID
// only and are append-only.
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BlogID    string             `json:"blogId" bson:"blogId"`
	Text      string             `json:"text" bson:"text"`
	UserName  string             `json:"userName" bson:"userName"`
	UserImage string             `json:"userImage,omitempty" bson:"userImage,omitempty"`
	PostedAt  time.Time          `json:"postedAt" bson:"postedAt"`
}

// CreateCommentRequest defines the request body for posting a comment.
// PostedAt is always stamped server-side; client timestamps are ignored.
type CreateCommentRequest struct {
	BlogID    string `json:"blogId" validate:"required"`
	Text      string `json:"text" validate:"required,min=1,max=1000"`
	UserName  string `json:"userName" validate:"required"`
	UserImage string `json:"userImage,omitempty" validate:"omitempty,url"`
}
