package handlers

import (
	"errors"
	"net/http"

	"github.com/bookhive/backend/internal/models"
	"github.com/bookhive/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// BookmarkHandler handles bookmark HTTP requests
type BookmarkHandler struct {
	bookmarkRepository repositories.BookmarkRepository
	bookRepository     repositories.BookRepository
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(bookmarkRepo repositories.BookmarkRepository, bookRepo repositories.BookRepository) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkRepository: bookmarkRepo,
		bookRepository:     bookRepo,
	}
}

// RegisterBookmarkRoutes registers bookmark routes
func (h *BookmarkHandler) RegisterBookmarkRoutes(g *echo.Group) {
	g.POST("/books/:book_id/bookmark", h.AddBookmark)
	g.DELETE("/books/:book_id/bookmark", h.RemoveBookmark)
	g.GET("/bookmarks", h.ListBookmarks)
}

// AddBookmark saves a book summary for later reading
func (h *BookmarkHandler) AddBookmark(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	bookID := c.Param("book_id")

	// Verify book exists
	if _, err := h.bookRepository.GetBookByID(c.Request().Context(), bookID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Book not found")
	}

	bookmark := &models.Bookmark{
		UserID: currentUserID,
		BookID: bookID,
	}
	if err := h.bookmarkRepository.CreateBookmark(bookmark); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return echo.NewHTTPError(http.StatusConflict, "Book already bookmarked")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"bookmarked": true})
}

// RemoveBookmark removes a saved book summary
func (h *BookmarkHandler) RemoveBookmark(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.bookmarkRepository.DeleteBookmark(currentUserID, c.Param("book_id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Bookmark not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"bookmarked": false})
}

// ListBookmarks lists the user's bookmarks, newest first
func (h *BookmarkHandler) ListBookmarks(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	bookmarks, err := h.bookmarkRepository.GetBookmarksByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookmarks)
}
