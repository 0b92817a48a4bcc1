package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bookhive/backend/internal/models"
	"github.com/bookhive/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the repository interfaces. Creation times advance by
// one second per insert so ordering assertions are deterministic.

var testEpoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

type fakeBookRepo struct {
	books   map[string]*models.Book
	inserts int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[string]*models.Book)}
}

func (f *fakeBookRepo) add(userID uint, title string, categories []string) *models.Book {
	book := &models.Book{
		UserID:     userID,
		Title:      title,
		Summary:    "summary of " + title,
		Categories: categories,
	}
	_ = f.CreateBook(context.Background(), book)
	return book
}

func (f *fakeBookRepo) CreateBook(_ context.Context, book *models.Book) error {
	book.ID = primitive.NewObjectID()
	book.CreatedAt = testEpoch.Add(time.Duration(f.inserts) * time.Second)
	book.UpdatedAt = book.CreatedAt
	f.inserts++
	f.books[book.ID.Hex()] = book
	return nil
}

func (f *fakeBookRepo) GetBookByID(_ context.Context, id string) (*models.Book, error) {
	book, ok := f.books[id]
	if !ok {
		return nil, fmt.Errorf("book %s: %w", id, repositories.ErrNotFound)
	}
	copied := *book
	return &copied, nil
}

func (f *fakeBookRepo) GetBooksByUserID(_ context.Context, userID uint, limit int64) ([]models.Book, error) {
	var books []models.Book
	for _, book := range f.books {
		if book.UserID == userID {
			books = append(books, *book)
		}
	}
	return sortAndCap(books, limit), nil
}

func (f *fakeBookRepo) GetRecentBooks(_ context.Context, limit int64) ([]models.Book, error) {
	var books []models.Book
	for _, book := range f.books {
		books = append(books, *book)
	}
	return sortAndCap(books, limit), nil
}

// SearchBooks mirrors the MongoDB filter semantics: case-insensitive
// substring against title or categories, case-insensitive exact category.
func (f *fakeBookRepo) SearchBooks(_ context.Context, titleFilter, categoryFilter string, limit int64) ([]models.Book, error) {
	var books []models.Book
	for _, book := range f.books {
		if matchesTitleFilter(book, titleFilter) && matchesCategoryFilter(book, categoryFilter) {
			books = append(books, *book)
		}
	}
	return sortAndCap(books, limit), nil
}

func matchesTitleFilter(book *models.Book, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	if strings.Contains(strings.ToLower(book.Title), needle) {
		return true
	}
	for _, category := range book.Categories {
		if strings.Contains(strings.ToLower(category), needle) {
			return true
		}
	}
	return false
}

func matchesCategoryFilter(book *models.Book, filter string) bool {
	if filter == "" {
		return true
	}
	for _, category := range book.Categories {
		if strings.EqualFold(category, filter) {
			return true
		}
	}
	return false
}

func sortAndCap(books []models.Book, limit int64) []models.Book {
	sort.Slice(books, func(i, j int) bool { return books[i].CreatedAt.After(books[j].CreatedAt) })
	if limit > 0 && int64(len(books)) > limit {
		books = books[:limit]
	}
	return books
}

func (f *fakeBookRepo) UpdateBook(_ context.Context, id string, book *models.Book) error {
	if _, ok := f.books[id]; !ok {
		return fmt.Errorf("book %s: %w", id, repositories.ErrNotFound)
	}
	copied := *book
	f.books[id] = &copied
	return nil
}

func (f *fakeBookRepo) DeleteBook(_ context.Context, id string) error {
	if _, ok := f.books[id]; !ok {
		return fmt.Errorf("book %s: %w", id, repositories.ErrNotFound)
	}
	delete(f.books, id)
	return nil
}

type fakeLikeRepo struct {
	likes map[string]map[uint]bool
	// forceCreateErr, when set, is returned by the next CreateLike call.
	forceCreateErr error
	// forceNotLiked makes the next HasUserLikedBook report false, to
	// simulate losing the check-then-act race.
	forceNotLiked bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]map[uint]bool)}
}

func (f *fakeLikeRepo) CreateLike(like *models.Like) error {
	if f.forceCreateErr != nil {
		err := f.forceCreateErr
		f.forceCreateErr = nil
		return err
	}
	if f.likes[like.BookID][like.UserID] {
		return fmt.Errorf("like on book %s by user %d: %w", like.BookID, like.UserID, repositories.ErrDuplicate)
	}
	if f.likes[like.BookID] == nil {
		f.likes[like.BookID] = make(map[uint]bool)
	}
	f.likes[like.BookID][like.UserID] = true
	return nil
}

func (f *fakeLikeRepo) DeleteLike(bookID string, userID uint) error {
	if !f.likes[bookID][userID] {
		return fmt.Errorf("like on book %s by user %d: %w", bookID, userID, repositories.ErrNotFound)
	}
	delete(f.likes[bookID], userID)
	return nil
}

func (f *fakeLikeRepo) HasUserLikedBook(bookID string, userID uint) (bool, error) {
	if f.forceNotLiked {
		f.forceNotLiked = false
		return false, nil
	}
	return f.likes[bookID][userID], nil
}

func (f *fakeLikeRepo) GetLikeCountByBookID(bookID string) (int64, error) {
	return int64(len(f.likes[bookID])), nil
}

func (f *fakeLikeRepo) DeleteLikesByBookID(bookID string) error {
	delete(f.likes, bookID)
	return nil
}

type fakeCommentRepo struct {
	comments []models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (f *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	comment.ID = f.nextID
	comment.CreatedAt = testEpoch.Add(time.Duration(f.nextID) * time.Second)
	f.nextID++
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	for _, comment := range f.comments {
		if comment.ID == id {
			copied := comment
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("comment %d: %w", id, repositories.ErrNotFound)
}

func (f *fakeCommentRepo) GetCommentsByBookID(bookID string) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range f.comments {
		if comment.BookID == bookID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (f *fakeCommentRepo) GetCommentCountByBookID(bookID string) (int64, error) {
	comments, _ := f.GetCommentsByBookID(bookID)
	return int64(len(comments)), nil
}

func (f *fakeCommentRepo) DeleteCommentsByBookID(bookID string) error {
	kept := f.comments[:0]
	for _, comment := range f.comments {
		if comment.BookID != bookID {
			kept = append(kept, comment)
		}
	}
	f.comments = kept
	return nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
	nextID        uint
	createErr     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	notification.ID = f.nextID
	notification.CreatedAt = testEpoch.Add(time.Duration(f.nextID) * time.Second)
	f.nextID++
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeNotificationRepo) GetByRecipientID(recipientID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
	var result []models.Notification
	for _, notification := range f.notifications {
		if notification.RecipientID != recipientID {
			continue
		}
		if unreadOnly && notification.IsRead {
			continue
		}
		result = append(result, notification)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	for _, notification := range f.notifications {
		if notification.RecipientID == recipientID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(notificationID, recipientID uint) error {
	for i := range f.notifications {
		if f.notifications[i].ID == notificationID && f.notifications[i].RecipientID == recipientID {
			f.notifications[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(recipientID uint) error {
	for i := range f.notifications {
		if f.notifications[i].RecipientID == recipientID {
			f.notifications[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) DeleteByBookID(bookID string) error {
	kept := f.notifications[:0]
	for _, notification := range f.notifications {
		if notification.BookID != bookID {
			kept = append(kept, notification)
		}
	}
	f.notifications = kept
	return nil
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) add(id uint, name string) *models.User {
	user := &models.User{ID: id, Name: name, Email: fmt.Sprintf("%s@example.com", strings.ToLower(name))}
	f.users[id] = user
	return user
}

func (f *fakeUserRepo) CreateUser(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, repositories.ErrNotFound)
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, repositories.ErrNotFound)
}

func (f *fakeUserRepo) UpdateUser(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeBookmarkRepo struct {
	bookmarks map[string]map[uint]bool
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{bookmarks: make(map[string]map[uint]bool)}
}

func (f *fakeBookmarkRepo) CreateBookmark(bookmark *models.Bookmark) error {
	if f.bookmarks[bookmark.BookID] == nil {
		f.bookmarks[bookmark.BookID] = make(map[uint]bool)
	}
	if f.bookmarks[bookmark.BookID][bookmark.UserID] {
		return fmt.Errorf("bookmark: %w", repositories.ErrDuplicate)
	}
	f.bookmarks[bookmark.BookID][bookmark.UserID] = true
	return nil
}

func (f *fakeBookmarkRepo) DeleteBookmark(userID uint, bookID string) error {
	if !f.bookmarks[bookID][userID] {
		return fmt.Errorf("bookmark: %w", repositories.ErrNotFound)
	}
	delete(f.bookmarks[bookID], userID)
	return nil
}

func (f *fakeBookmarkRepo) IsBookmarked(userID uint, bookID string) (bool, error) {
	return f.bookmarks[bookID][userID], nil
}

func (f *fakeBookmarkRepo) GetBookmarksByUser(userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	for bookID, users := range f.bookmarks {
		if users[userID] {
			bookmarks = append(bookmarks, models.Bookmark{UserID: userID, BookID: bookID})
		}
	}
	return bookmarks, nil
}

func (f *fakeBookmarkRepo) DeleteBookmarksByBookID(bookID string) error {
	delete(f.bookmarks, bookID)
	return nil
}
