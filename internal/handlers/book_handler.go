package handlers

import (
	"errors"
	"net/http"

	"github.com/bookhive/backend/internal/models"
	"github.com/bookhive/backend/internal/repositories"
	"github.com/bookhive/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// BookHandler handles HTTP requests related to book summaries
type BookHandler struct {
	bookService *services.BookService
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// RegisterBookRoutes registers book-related routes
func (h *BookHandler) RegisterBookRoutes(g *echo.Group) {
	g.POST("/books", h.CreateBook)
	g.GET("/books", h.ListBooks)
	g.GET("/books/search", h.SearchBooks)
	g.GET("/books/:id", h.GetBook)
	g.PUT("/books/:id", h.UpdateBook)
	g.DELETE("/books/:id", h.DeleteBook)
}

// CreateBook posts a new book summary
func (h *BookHandler) CreateBook(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.bookService.Create(c.Request().Context(), currentUserID, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, book)
}

// ListBooks returns the most recent book summaries
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.bookService.ListRecent(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

// SearchBooks runs the content query over title and categories
func (h *BookHandler) SearchBooks(c echo.Context) error {
	books, err := h.bookService.Search(c.Request().Context(), c.QueryParam("title"), c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook retrieves a single book summary
func (h *BookHandler) GetBook(c echo.Context) error {
	book, err := h.bookService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

// UpdateBook edits a book summary (author only)
func (h *BookHandler) UpdateBook(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.bookService.Update(c.Request().Context(), c.Param("id"), currentUserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		case errors.Is(err, services.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this book")
		case errors.Is(err, services.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book summary and its social rows (author only)
func (h *BookHandler) DeleteBook(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.bookService.Delete(c.Request().Context(), c.Param("id"), currentUserID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		case errors.Is(err, services.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this book")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.NoContent(http.StatusNoContent)
}
