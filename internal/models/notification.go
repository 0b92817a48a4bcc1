package models

import "time"

// Notification kinds
const (
	NotificationKindLike  = "like"
	NotificationKindReply = "reply"
)

// Notification represents a user notification (PostgreSQL).
// RecipientID is never equal to ActorID; the fan-out rule skips those.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Kind        string    `json:"kind" gorm:"size:20;index"` // like, reply
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	BookID      string    `json:"book_id,omitempty"`
	CommentID   *uint     `json:"comment_id,omitempty"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
