package repositories

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/bookhive/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookRepository defines the interface for book summary data operations
type BookRepository interface {
	CreateBook(ctx context.Context, book *models.Book) error
	GetBookByID(ctx context.Context, id string) (*models.Book, error)
	GetBooksByUserID(ctx context.Context, userID uint, limit int64) ([]models.Book, error)
	GetRecentBooks(ctx context.Context, limit int64) ([]models.Book, error)
	SearchBooks(ctx context.Context, titleFilter, categoryFilter string, limit int64) ([]models.Book, error)
	UpdateBook(ctx context.Context, id string, book *models.Book) error
	DeleteBook(ctx context.Context, id string) error
}

// MongoBookRepository implements BookRepository for MongoDB
type MongoBookRepository struct {
	collection *mongo.Collection
}

// NewMongoBookRepository creates a new MongoBookRepository
func NewMongoBookRepository(db *mongo.Database) *MongoBookRepository {
	return &MongoBookRepository{collection: db.Collection("books")}
}

// CreateBook creates a new book summary in MongoDB
func (r *MongoBookRepository) CreateBook(ctx context.Context, book *models.Book) error {
	book.ID = primitive.NewObjectID()
	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt
	_, err := r.collection.InsertOne(ctx, book)
	return err
}

// GetBookByID retrieves a book summary by ID from MongoDB
func (r *MongoBookRepository) GetBookByID(ctx context.Context, id string) (*models.Book, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("book %s: %w", id, ErrNotFound)
	}

	var book models.Book
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&book)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("book %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &book, nil
}

// GetBooksByUserID retrieves book summaries by a specific author from MongoDB
func (r *MongoBookRepository) GetBooksByUserID(ctx context.Context, userID uint, limit int64) ([]models.Book, error) {
	return r.find(ctx, bson.M{"user_id": userID}, limit)
}

// GetRecentBooks retrieves the most recent book summaries from MongoDB
func (r *MongoBookRepository) GetRecentBooks(ctx context.Context, limit int64) ([]models.Book, error) {
	return r.find(ctx, bson.M{}, limit)
}

// SearchBooks retrieves book summaries matching the given filters, most
// recent first. Filter semantics live in buildSearchFilter.
func (r *MongoBookRepository) SearchBooks(ctx context.Context, titleFilter, categoryFilter string, limit int64) ([]models.Book, error) {
	return r.find(ctx, buildSearchFilter(titleFilter, categoryFilter), limit)
}

// buildSearchFilter converts the search parameters into a MongoDB filter.
// An empty titleFilter or categoryFilter matches everything. The title
// filter is a case-insensitive substring match against the title or any
// category entry; the category filter is a case-insensitive exact match
// against a category entry.
func buildSearchFilter(titleFilter, categoryFilter string) bson.M {
	conditions := []bson.M{}

	if titleFilter != "" {
		pattern := regexp.QuoteMeta(titleFilter)
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"categories": bson.M{"$regex": pattern, "$options": "i"}},
		}})
	}

	if categoryFilter != "" {
		pattern := "^" + regexp.QuoteMeta(categoryFilter) + "$"
		conditions = append(conditions, bson.M{"categories": bson.M{"$regex": pattern, "$options": "i"}})
	}

	switch len(conditions) {
	case 0:
		return bson.M{}
	case 1:
		return conditions[0]
	default:
		return bson.M{"$and": conditions}
	}
}

func (r *MongoBookRepository) find(ctx context.Context, filter bson.M, limit int64) ([]models.Book, error) {
	var books []models.Book
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateBook updates an existing book summary in MongoDB
func (r *MongoBookRepository) UpdateBook(ctx context.Context, id string, book *models.Book) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("book %s: %w", id, ErrNotFound)
	}

	book.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":      book.Title,
			"summary":    book.Summary,
			"categories": book.Categories,
			"cover_url":  book.CoverURL,
			"source_url": book.SourceURL,
			"updated_at": book.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("book %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteBook deletes a book summary by ID from MongoDB
func (r *MongoBookRepository) DeleteBook(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("book %s: %w", id, ErrNotFound)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("book %s: %w", id, ErrNotFound)
	}
	return nil
}
