package repositories

import (
	"errors"
	"fmt"

	"github.com/bookhive/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(bookID string, userID uint) error
	HasUserLikedBook(bookID string, userID uint) (bool, error)
	GetLikeCountByBookID(bookID string) (int64, error)
	DeleteLikesByBookID(bookID string) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts a like row. The (book_id, user_id) unique index turns
// a concurrent duplicate insert into ErrDuplicate instead of a second row.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("like on book %s by user %d: %w", like.BookID, like.UserID, ErrDuplicate)
		}
		return err
	}
	return nil
}

// DeleteLike removes a like row, reporting ErrNotFound when none existed
func (r *PostgresLikeRepository) DeleteLike(bookID string, userID uint) error {
	res := r.db.Where("book_id = ? AND user_id = ?", bookID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("like on book %s by user %d: %w", bookID, userID, ErrNotFound)
	}
	return nil
}

// HasUserLikedBook checks if a user has liked a specific book summary
func (r *PostgresLikeRepository) HasUserLikedBook(bookID string, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("book_id = ? AND user_id = ?", bookID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikeCountByBookID retrieves the count of likes for a specific book summary
func (r *PostgresLikeRepository) GetLikeCountByBookID(bookID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("book_id = ?", bookID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteLikesByBookID removes all likes of a book summary (book deletion cleanup)
func (r *PostgresLikeRepository) DeleteLikesByBookID(bookID string) error {
	return r.db.Where("book_id = ?", bookID).Delete(&models.Like{}).Error
}
