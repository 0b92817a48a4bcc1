package models

import "time"

// Bookmark represents a book summary saved by a user for later reading
type Bookmark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_book_bookmark"`
	BookID    string    `json:"book_id" gorm:"index;uniqueIndex:idx_user_book_bookmark"`
	CreatedAt time.Time `json:"created_at"`
}
