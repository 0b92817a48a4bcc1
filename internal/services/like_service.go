package services

import (
	"context"
	"errors"

	"github.com/bookhive/backend/internal/models"
	"github.com/bookhive/backend/internal/repositories"
)

// LikeService owns the like toggle state transition
type LikeService struct {
	books    repositories.BookRepository
	likes    repositories.LikeRepository
	notifier *NotificationService
}

// NewLikeService creates a new LikeService
func NewLikeService(bookRepo repositories.BookRepository, likeRepo repositories.LikeRepository, notifier *NotificationService) *LikeService {
	return &LikeService{books: bookRepo, likes: likeRepo, notifier: notifier}
}

// Toggle flips the user's like on a book summary and returns the new state
// with the recomputed like count.
//
// Only the create transition notifies the book's author; un-liking is
// silent. The check-then-act race on a concurrent double-toggle is left
// to the (book_id, user_id) unique index: a duplicate insert comes back
// as ErrDuplicate and is absorbed as "already liked", and a delete that
// finds no row is absorbed as "already unliked".
func (s *LikeService) Toggle(ctx context.Context, bookID string, userID uint) (*models.LikeState, error) {
	book, err := s.books.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	liked, err := s.likes.HasUserLikedBook(bookID, userID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.likes.DeleteLike(bookID, userID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return s.state(bookID, false)
	}

	err = s.likes.CreateLike(&models.Like{BookID: bookID, UserID: userID})
	switch {
	case err == nil:
		s.notifier.Notify(book.UserID, userID, models.NotificationKindLike, bookID, nil)
	case errors.Is(err, repositories.ErrDuplicate):
		// A concurrent toggle won the insert; that toggle already notified.
	default:
		return nil, err
	}

	return s.state(bookID, true)
}

// HasLiked reports whether the user currently likes the book summary
func (s *LikeService) HasLiked(ctx context.Context, bookID string, userID uint) (bool, error) {
	if _, err := s.books.GetBookByID(ctx, bookID); err != nil {
		return false, err
	}
	return s.likes.HasUserLikedBook(bookID, userID)
}

// Count returns the current number of likes on the book summary
func (s *LikeService) Count(ctx context.Context, bookID string) (int64, error) {
	if _, err := s.books.GetBookByID(ctx, bookID); err != nil {
		return 0, err
	}
	return s.likes.GetLikeCountByBookID(bookID)
}

func (s *LikeService) state(bookID string, liked bool) (*models.LikeState, error) {
	count, err := s.likes.GetLikeCountByBookID(bookID)
	if err != nil {
		return nil, err
	}
	return &models.LikeState{Liked: liked, LikeCount: count}, nil
}
