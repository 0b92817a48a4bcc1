package handlers

import (
	"errors"
	"net/http"

	"github.com/bookhive/backend/internal/repositories"
	"github.com/bookhive/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/books/:book_id/like", h.ToggleLike)
	g.GET("/books/:book_id/likes/count", h.GetLikeCount)
	g.GET("/books/:book_id/likes/status", h.GetLikeStatus)
}

// ToggleLike flips the authenticated user's like on a book summary
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	state, err := h.likeService.Toggle(c.Request().Context(), c.Param("book_id"), currentUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, state)
}

// GetLikeCount retrieves the total number of likes for a book summary
func (h *LikeHandler) GetLikeCount(c echo.Context) error {
	bookID := c.Param("book_id")

	count, err := h.likeService.Count(c.Request().Context(), bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"book_id": bookID, "like_count": count})
}

// GetLikeStatus checks if the authenticated user has liked a book summary
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	bookID := c.Param("book_id")

	liked, err := h.likeService.HasLiked(c.Request().Context(), bookID, currentUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"book_id": bookID, "user_id": currentUserID, "liked": liked})
}
