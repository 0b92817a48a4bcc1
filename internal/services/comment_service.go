package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bookhive/backend/internal/models"
	"github.com/bookhive/backend/internal/repositories"
)

// CommentService owns comment creation and retrieval
type CommentService struct {
	books    repositories.BookRepository
	comments repositories.CommentRepository
	notifier *NotificationService
}

// NewCommentService creates a new CommentService
func NewCommentService(bookRepo repositories.BookRepository, commentRepo repositories.CommentRepository, notifier *NotificationService) *CommentService {
	return &CommentService{books: bookRepo, comments: commentRepo, notifier: notifier}
}

// Create adds a comment to a book summary. A comment with a parent is a
// reply and notifies the parent comment's author; a root comment notifies
// the book's author. Fan-out happens only after the comment row has been
// written, and never targets the commenter themselves.
func (s *CommentService) Create(ctx context.Context, bookID string, userID uint, content string, parentID *uint) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment body must not be empty", ErrValidation)
	}

	book, err := s.books.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	var parent *models.Comment
	if parentID != nil {
		parent, err = s.comments.GetCommentByID(*parentID)
		if err != nil {
			return nil, err
		}
		// A reply must stay on the same book as its parent. Checked once
		// here; tree assembly later relies on it.
		if parent.BookID != bookID {
			return nil, fmt.Errorf("%w: parent comment belongs to a different book", ErrValidation)
		}
	}

	comment := &models.Comment{
		BookID:   bookID,
		UserID:   userID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}

	if parent != nil {
		s.notifier.Notify(parent.UserID, userID, models.NotificationKindReply, bookID, &comment.ID)
	} else {
		s.notifier.Notify(book.UserID, userID, models.NotificationKindReply, bookID, &comment.ID)
	}

	return comment, nil
}

// GetTree returns the book summary's comments as a forest ordered by
// creation time.
func (s *CommentService) GetTree(ctx context.Context, bookID string) ([]*models.CommentNode, error) {
	if _, err := s.books.GetBookByID(ctx, bookID); err != nil {
		return nil, err
	}

	comments, err := s.comments.GetCommentsByBookID(bookID)
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(comments), nil
}
