package handlers

import (
	"net/http"

	"github.com/Meyyun/HobbyHub/internal/middleware"
	"github.com/Meyyun/HobbyHub/internal/models"
	"github.com/Meyyun/HobbyHub/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	travelRepository  repositories.TravelRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, travelRepo repositories.TravelRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		travelRepository:  travelRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.GET("/posts/:id/comments", h.GetCommentsByTravelID)
}

// CreateComment appends a comment to a post. The author is the session
// username.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	claims := middleware.SessionClaims(c)

	id, err := parseTravelID(c)
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Verify post exists
	if _, err := h.travelRepository.GetTravelByID(c.Request().Context(), id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := &models.Comment{
		TravelID: id,
		Author:   claims.Username,
		Content:  req.Content,
	}

	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByTravelID retrieves the comment thread of a post, oldest
// first
func (h *CommentHandler) GetCommentsByTravelID(c echo.Context) error {
	id, err := parseTravelID(c)
	if err != nil {
		return err
	}

	if _, err := h.travelRepository.GetTravelByID(c.Request().Context(), id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.GetCommentsByTravelID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	return c.JSON(http.StatusOK, comments)
}
