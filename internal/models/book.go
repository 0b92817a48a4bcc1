package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book represents a user-authored book summary stored in MongoDB
type Book struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     uint               `json:"user_id" bson:"user_id"` // Author; immutable after creation
	Title      string             `json:"title" bson:"title"`
	Summary    string             `json:"summary" bson:"summary"`
	Categories []string           `json:"categories,omitempty" bson:"categories,omitempty"`
	CoverURL   string             `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	SourceURL  string             `json:"source_url,omitempty" bson:"source_url,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// BookSummary is a search/listing result enriched with author and counts
type BookSummary struct {
	Book
	AuthorName   string `json:"author_name"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}

// CreateBookRequest defines the request body for posting a new book summary
type CreateBookRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Summary    string   `json:"summary" validate:"required,min=1,max=10000"`
	Categories []string `json:"categories,omitempty" validate:"omitempty,max=10,dive,max=50"`
	CoverURL   string   `json:"cover_url,omitempty" validate:"omitempty,url"`
	SourceURL  string   `json:"source_url,omitempty" validate:"omitempty,url"`
}

// UpdateBookRequest defines the request body for editing an existing summary
type UpdateBookRequest struct {
	Title      string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Summary    string   `json:"summary,omitempty" validate:"omitempty,min=1,max=10000"`
	Categories []string `json:"categories,omitempty" validate:"omitempty,max=10,dive,max=50"`
	CoverURL   string   `json:"cover_url,omitempty" validate:"omitempty,url"`
	SourceURL  string   `json:"source_url,omitempty" validate:"omitempty,url"`
}
