package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is an immutable snapshot of the blog author, taken at
// creation/update time.
type Author struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Photo string `json:"photo,omitempty" bson:"photo,omitempty"`
}

// Blog represents a blog post document stored in MongoDB
type Blog struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	ShortDescription string             `json:"shortDescription" bson:"shortDescription"`
	Tags             []string           `json:"tags" bson:"tags"`
	Content          string             `json:"content" bson:"content"`
	WordCount        int                `json:"wordCount" bson:"wordCount"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	Author           Author             `json:"author" bson:"author"`
	Likes            []string           `json:"likes" bson:"likes"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}

// CountWords derives the word count from blog content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CreateBlogRequest defines the form fields for creating a new blog
type CreateBlogRequest struct {
	Title            string   `form:"title" validate:"required,min=1,max=200"`
	ShortDescription string   `form:"shortDescription" validate:"required,min=1,max=500"`
	Tags             []string `form:"tags" validate:"omitempty,dive,min=1"`
	Content          string   `form:"content" validate:"required,min=1"`
	AuthorName       string   `form:"authorName" validate:"required"`
	AuthorEmail      string   `form:"authorEmail" validate:"required,email"`
	AuthorPhoto      string   `form:"authorPhoto" validate:"omitempty,url"`
}

// UpdateBlogRequest defines the form fields for updating an existing blog
type UpdateBlogRequest struct {
	Title            string   `form:"title" validate:"omitempty,min=1,max=200"`
	ShortDescription string   `form:"shortDescription" validate:"omitempty,min=1,max=500"`
	Tags             []string `form:"tags" validate:"omitempty,dive,min=1"`
	Content          string   `form:"content" validate:"omitempty,min=1"`
	AuthorName       string   `form:"authorName" validate:"omitempty"`
	AuthorEmail      string   `form:"authorEmail" validate:"omitempty,email"`
	AuthorPhoto      string   `form:"authorPhoto" validate:"omitempty,url"`
}
