package models

import "time"

// Like represents a user's like on a book summary.
// The (book_id, user_id) pair is unique; row existence is the liked state.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookID    string    `json:"book_id" gorm:"index;uniqueIndex:idx_book_user_like"` // MongoDB ObjectID as string
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_book_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeState is the outcome of a toggle: the new state plus the recomputed count
type LikeState struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}
