package repositories

import (
	"errors"
	"fmt"

	"github.com/bookhive/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
// Comment rows are immutable; there is no update operation.
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByBookID(bookID string) ([]models.Comment, error)
	GetCommentCountByBookID(bookID string) (int64, error)
	DeleteCommentsByBookID(bookID string) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment in PostgreSQL
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByBookID retrieves all comments for a book summary, oldest
// first with ID as the tie-breaker so tree assembly is deterministic.
func (r *PostgresCommentRepository) GetCommentsByBookID(bookID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("book_id = ?", bookID).Order("created_at ASC, id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCommentCountByBookID retrieves the count of comments for a book summary
func (r *PostgresCommentRepository) GetCommentCountByBookID(bookID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("book_id = ?", bookID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteCommentsByBookID removes all comments of a book summary (book deletion cleanup)
func (r *PostgresCommentRepository) DeleteCommentsByBookID(bookID string) error {
	return r.db.Where("book_id = ?", bookID).Delete(&models.Comment{}).Error
}
