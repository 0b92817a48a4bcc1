package models

import "time"

// Comment represents a comment on a book summary. Comments are immutable
// after creation; a nil ParentID marks a root comment.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookID    string    `json:"book_id" gorm:"index"` // MongoDB ObjectID as string
	UserID    uint      `json:"user_id" gorm:"index"`
	ParentID  *uint     `json:"parent_id,omitempty" gorm:"index"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentNode is a comment with its replies, as served to clients
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}

// CreateCommentRequest defines the request body for creating a comment
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,max=2000"`
	ParentID *uint  `json:"parent_id,omitempty"`
}
