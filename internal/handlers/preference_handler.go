package handlers

import (
	"net/http"

	"github.com/Meyyun/HobbyHub/internal/middleware"
	"github.com/Meyyun/HobbyHub/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// defaultTheme is what a user sees before ever toggling.
const defaultTheme = "light"

// PreferenceHandler stores per-user UI preferences, currently only the
// theme.
type PreferenceHandler struct {
	sessionRepository repositories.SessionRepository
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(sessionRepo repositories.SessionRepository) *PreferenceHandler {
	return &PreferenceHandler{sessionRepository: sessionRepo}
}

// RegisterPreferenceRoutes registers preference-related routes
func (h *PreferenceHandler) RegisterPreferenceRoutes(g *echo.Group) {
	g.GET("/preferences/theme", h.GetTheme)
	g.PUT("/preferences/theme", h.PutTheme)
}

// ThemeRequest defines the request body for setting the theme
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// GetTheme returns the stored theme, defaulting to light
func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	claims := middleware.SessionClaims(c)

	theme, err := h.sessionRepository.GetTheme(c.Request().Context(), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read theme")
	}
	if theme == "" {
		theme = defaultTheme
	}
	return c.JSON(http.StatusOK, echo.Map{"theme": theme})
}

// PutTheme stores the theme preference
func (h *PreferenceHandler) PutTheme(c echo.Context) error {
	claims := middleware.SessionClaims(c)

	var req ThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.sessionRepository.PutTheme(c.Request().Context(), claims.UserID, req.Theme); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store theme")
	}
	return c.JSON(http.StatusOK, echo.Map{"theme": req.Theme})
}
