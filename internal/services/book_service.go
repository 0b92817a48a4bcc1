package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bookhive/backend/internal/models"
	"github.com/bookhive/backend/internal/repositories"
)

// searchResultLimit caps search and listing results.
const searchResultLimit = 100

// maxCategories bounds the ordered category list on a book summary.
const maxCategories = 10

// BookService owns book summary CRUD and the content query
type BookService struct {
	books         repositories.BookRepository
	users         repositories.UserRepository
	likes         repositories.LikeRepository
	comments      repositories.CommentRepository
	notifications repositories.NotificationRepository
	bookmarks     repositories.BookmarkRepository
}

// NewBookService creates a new BookService
func NewBookService(
	bookRepo repositories.BookRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	notificationRepo repositories.NotificationRepository,
	bookmarkRepo repositories.BookmarkRepository,
) *BookService {
	return &BookService{
		books:         bookRepo,
		users:         userRepo,
		likes:         likeRepo,
		comments:      commentRepo,
		notifications: notificationRepo,
		bookmarks:     bookmarkRepo,
	}
}

// Create stores a new book summary authored by userID
func (s *BookService) Create(ctx context.Context, userID uint, req *models.CreateBookRequest) (*models.Book, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	summary := strings.TrimSpace(req.Summary)
	if summary == "" {
		return nil, fmt.Errorf("%w: summary must not be empty", ErrValidation)
	}
	categories, err := normalizeCategories(req.Categories)
	if err != nil {
		return nil, err
	}

	book := &models.Book{
		UserID:     userID,
		Title:      title,
		Summary:    summary,
		Categories: categories,
		CoverURL:   req.CoverURL,
		SourceURL:  req.SourceURL,
	}
	if err := s.books.CreateBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Get retrieves a single book summary
func (s *BookService) Get(ctx context.Context, bookID string) (*models.Book, error) {
	return s.books.GetBookByID(ctx, bookID)
}

// ListRecent returns the newest book summaries, enriched with author and counts
func (s *BookService) ListRecent(ctx context.Context) ([]models.BookSummary, error) {
	books, err := s.books.GetRecentBooks(ctx, searchResultLimit)
	if err != nil {
		return nil, err
	}
	return s.enrich(books), nil
}

// ListByUser returns one author's book summaries, newest first
func (s *BookService) ListByUser(ctx context.Context, userID uint) ([]models.BookSummary, error) {
	books, err := s.books.GetBooksByUserID(ctx, userID, searchResultLimit)
	if err != nil {
		return nil, err
	}
	return s.enrich(books), nil
}

// Search runs the content query: titleFilter is a case-insensitive
// substring match against title or any category entry, categoryFilter a
// case-insensitive exact category match, empty filters match everything.
// Results come back newest first, capped, enriched with the author's
// display name and aggregate like/comment counts.
func (s *BookService) Search(ctx context.Context, titleFilter, categoryFilter string) ([]models.BookSummary, error) {
	books, err := s.books.SearchBooks(ctx, strings.TrimSpace(titleFilter), strings.TrimSpace(categoryFilter), searchResultLimit)
	if err != nil {
		return nil, err
	}
	return s.enrich(books), nil
}

// Update edits a book summary; only the author may mutate it
func (s *BookService) Update(ctx context.Context, bookID string, userID uint, req *models.UpdateBookRequest) (*models.Book, error) {
	book, err := s.books.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.UserID != userID {
		return nil, fmt.Errorf("%w: only the author may edit this summary", ErrForbidden)
	}

	if req.Title != "" {
		book.Title = strings.TrimSpace(req.Title)
		if book.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
	}
	if req.Summary != "" {
		book.Summary = strings.TrimSpace(req.Summary)
		if book.Summary == "" {
			return nil, fmt.Errorf("%w: summary must not be empty", ErrValidation)
		}
	}
	if req.Categories != nil {
		categories, err := normalizeCategories(req.Categories)
		if err != nil {
			return nil, err
		}
		book.Categories = categories
	}
	if req.CoverURL != "" {
		book.CoverURL = req.CoverURL
	}
	if req.SourceURL != "" {
		book.SourceURL = req.SourceURL
	}

	if err := s.books.UpdateBook(ctx, bookID, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Delete removes a book summary and its dependent rows; only the author
// may delete it. Books live in MongoDB while their likes, comments,
// notifications and bookmarks live in PostgreSQL, so the cascade is
// explicit here. Cleanup failures after the document delete are logged,
// not surfaced.
func (s *BookService) Delete(ctx context.Context, bookID string, userID uint) error {
	book, err := s.books.GetBookByID(ctx, bookID)
	if err != nil {
		return err
	}
	if book.UserID != userID {
		return fmt.Errorf("%w: only the author may delete this summary", ErrForbidden)
	}

	if err := s.books.DeleteBook(ctx, bookID); err != nil {
		return err
	}

	if err := s.comments.DeleteCommentsByBookID(bookID); err != nil {
		log.Printf("book %s: comment cleanup failed: %v", bookID, err)
	}
	if err := s.likes.DeleteLikesByBookID(bookID); err != nil {
		log.Printf("book %s: like cleanup failed: %v", bookID, err)
	}
	if err := s.notifications.DeleteByBookID(bookID); err != nil {
		log.Printf("book %s: notification cleanup failed: %v", bookID, err)
	}
	if err := s.bookmarks.DeleteBookmarksByBookID(bookID); err != nil {
		log.Printf("book %s: bookmark cleanup failed: %v", bookID, err)
	}
	return nil
}

// enrich attaches author display names and aggregate counts to listing
// results. Authors repeat across results, so lookups are cached per call.
func (s *BookService) enrich(books []models.Book) []models.BookSummary {
	summaries := make([]models.BookSummary, len(books))
	authorCache := make(map[uint]string)

	for i, book := range books {
		summaries[i] = models.BookSummary{Book: book}

		if name, ok := authorCache[book.UserID]; ok {
			summaries[i].AuthorName = name
		} else if author, err := s.users.GetUserByID(book.UserID); err == nil {
			authorCache[book.UserID] = author.Name
			summaries[i].AuthorName = author.Name
		}

		bookID := book.ID.Hex()
		if count, err := s.likes.GetLikeCountByBookID(bookID); err == nil {
			summaries[i].LikeCount = count
		}
		if count, err := s.comments.GetCommentCountByBookID(bookID); err == nil {
			summaries[i].CommentCount = count
		}
	}
	return summaries
}

// normalizeCategories trims every entry and rejects empty entries or an
// over-long list.
func normalizeCategories(categories []string) ([]string, error) {
	if len(categories) > maxCategories {
		return nil, fmt.Errorf("%w: at most %d categories allowed", ErrValidation, maxCategories)
	}
	normalized := make([]string, len(categories))
	for i, category := range categories {
		trimmed := strings.TrimSpace(category)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: category entries must not be empty", ErrValidation)
		}
		normalized[i] = trimmed
	}
	return normalized, nil
}
