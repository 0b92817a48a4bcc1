package services

import (
	"log"

	"github.com/bookhive/backend/internal/models"
	"github.com/bookhive/backend/internal/repositories"
)

// inboxLimit caps how many notifications a single inbox fetch returns.
const inboxLimit = 30

// NotificationService owns notification fan-out and the pull-based inbox
type NotificationService struct {
	notifications repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notificationRepo}
}

// Notify creates an unread notification for recipientID, triggered by
// actorID. It is a no-op when the recipient is unknown or the recipient
// is the actor; users are never notified about their own activity.
//
// Fan-out is best effort: it runs only after the primary write (the like
// or comment) has committed, and a failure here is logged rather than
// returned so it can never unwind the primary operation.
func (s *NotificationService) Notify(recipientID, actorID uint, kind, bookID string, commentID *uint) {
	if recipientID == 0 || recipientID == actorID {
		return
	}

	notification := &models.Notification{
		Kind:        kind,
		ActorID:     actorID,
		RecipientID: recipientID,
		BookID:      bookID,
		CommentID:   commentID,
	}

	if err := s.notifications.CreateNotification(notification); err != nil {
		log.Printf("notification fan-out failed: kind=%s recipient=%d actor=%d book=%s: %v",
			kind, recipientID, actorID, bookID, err)
	}
}

// List returns the user's notifications, most recent first, capped at the
// inbox limit. With unreadOnly set, only unread notifications are returned.
func (s *NotificationService) List(userID uint, unreadOnly bool) ([]models.Notification, error) {
	return s.notifications.GetByRecipientID(userID, unreadOnly, inboxLimit)
}

// UnreadCount returns the number of unread notifications for the user
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.notifications.GetUnreadCount(userID)
}

// MarkRead marks a single notification as read. The update is scoped to
// the requesting user's own rows; a foreign or unknown ID is a no-op.
func (s *NotificationService) MarkRead(notificationID, userID uint) error {
	return s.notifications.MarkAsRead(notificationID, userID)
}

// MarkAllRead marks every notification owned by the user as read
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.notifications.MarkAllAsRead(userID)
}
