package handlers

import (
	"net/http"

	"github.com/Meyyun/HobbyHub/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// LikeHandler handles HTTP requests related to likes. Liking needs no
// secret key: any signed-in viewer may like any post, any number of
// times.
type LikeHandler struct {
	travelRepository repositories.TravelRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(travelRepo repositories.TravelRepository) *LikeHandler {
	return &LikeHandler{travelRepository: travelRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.LikeTravel)
}

// LikeTravel bumps the like counter and returns the new count. On
// failure the stored count is untouched and the caller keeps its
// pre-call value.
func (h *LikeHandler) LikeTravel(c echo.Context) error {
	id, err := parseTravelID(c)
	if err != nil {
		return err
	}

	count, err := h.travelRepository.IncrementLike(c.Request().Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating likes")
	}

	return c.JSON(http.StatusOK, echo.Map{"id": id, "like": count})
}
