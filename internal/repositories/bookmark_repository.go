package repositories

import (
	"errors"
	"fmt"

	"github.com/bookhive/backend/internal/models"
	"gorm.io/gorm"
)

// BookmarkRepository defines the interface for bookmark operations
type BookmarkRepository interface {
	CreateBookmark(bookmark *models.Bookmark) error
	DeleteBookmark(userID uint, bookID string) error
	IsBookmarked(userID uint, bookID string) (bool, error)
	GetBookmarksByUser(userID uint) ([]models.Bookmark, error)
	DeleteBookmarksByBookID(bookID string) error
}

// PostgresBookmarkRepository implements BookmarkRepository
type PostgresBookmarkRepository struct {
	db *gorm.DB
}

func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

func (r *PostgresBookmarkRepository) CreateBookmark(bookmark *models.Bookmark) error {
	if err := r.db.Create(bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("bookmark on book %s by user %d: %w", bookmark.BookID, bookmark.UserID, ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *PostgresBookmarkRepository) DeleteBookmark(userID uint, bookID string) error {
	res := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("bookmark on book %s by user %d: %w", bookID, userID, ErrNotFound)
	}
	return nil
}

func (r *PostgresBookmarkRepository) IsBookmarked(userID uint, bookID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).Where("user_id = ? AND book_id = ?", userID, bookID).Count(&count).Error
	return count > 0, err
}

func (r *PostgresBookmarkRepository) GetBookmarksByUser(userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookmarks).Error
	return bookmarks, err
}

// DeleteBookmarksByBookID removes all bookmarks of a book summary (book deletion cleanup)
func (r *PostgresBookmarkRepository) DeleteBookmarksByBookID(bookID string) error {
	return r.db.Where("book_id = ?", bookID).Delete(&models.Bookmark{}).Error
}
