package handlers

import (
	"net/http"
	"strconv"

	"github.com/Meyyun/HobbyHub/internal/authgate"
	"github.com/Meyyun/HobbyHub/internal/middleware"
	"github.com/Meyyun/HobbyHub/internal/models"
	"github.com/Meyyun/HobbyHub/internal/repost"
	"github.com/Meyyun/HobbyHub/internal/repositories"
	"github.com/Meyyun/HobbyHub/internal/thread"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// TravelHandler handles HTTP requests related to travel posts
type TravelHandler struct {
	travelRepository  repositories.TravelRepository
	commentRepository repositories.CommentRepository
}

// NewTravelHandler creates a new TravelHandler
func NewTravelHandler(travelRepo repositories.TravelRepository, commentRepo repositories.CommentRepository) *TravelHandler {
	return &TravelHandler{
		travelRepository:  travelRepo,
		commentRepository: commentRepo,
	}
}

// RegisterTravelRoutes registers post-related routes
func (h *TravelHandler) RegisterTravelRoutes(g *echo.Group) {
	g.POST("/posts", h.CreateTravel)
	g.GET("/posts/:id", h.GetTravel)
	g.PUT("/posts/:id", h.UpdateTravel)
	g.DELETE("/posts/:id", h.DeleteTravel)
}

// TravelDetail is the detail view of a post: the entry itself, its
// comment thread and, for reposts, the referenced entry when it can be
// resolved unambiguously.
type TravelDetail struct {
	models.Travel
	Comments       []models.Comment `json:"comments"`
	ReferencedPost *models.Travel   `json:"referenced_post,omitempty"`
}

// CreateTravel shares a new journey. When a repost id is given the
// original is fetched first and the new post stores both the explicit
// reference and the human-readable back-reference line.
func (h *TravelHandler) CreateTravel(c echo.Context) error {
	claims := middleware.SessionClaims(c)

	var req models.CreateTravelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	secretHash, err := authgate.Hash(req.SecretKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store secret key")
	}

	travel := &models.Travel{
		Title:      req.Title,
		Username:   claims.Username,
		SecretHash: secretHash,
		Location:   req.Location,
		TravelType: req.TravelType,
		Photos:     req.Photos,
		Body:       req.Body,
	}

	if req.RepostID != 0 {
		original, err := h.travelRepository.GetTravelByID(c.Request().Context(), req.RepostID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return echo.NewHTTPError(http.StatusBadRequest, "Original post not found. Please check the post ID.")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		travel.RepostOf = &original.ID
		travel.Description = repost.Describe(original.Title, original.Username)
	}

	if err := h.travelRepository.CreateTravel(c.Request().Context(), travel); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, travel)
}

// GetTravel retrieves a post with its comment thread and repost
// reference
func (h *TravelHandler) GetTravel(c echo.Context) error {
	id, err := parseTravelID(c)
	if err != nil {
		return err
	}

	travel, err := h.travelRepository.GetTravelByID(c.Request().Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	detail := TravelDetail{Travel: *travel}

	// Rows the startup migration has not touched yet still carry the
	// encoded thread; decode it in front of the stored comment rows.
	if travel.LegacyThread != "" {
		body, entries := thread.Parse(travel.LegacyThread)
		if detail.Body == "" {
			detail.Body = body
		}
		for _, entry := range entries {
			detail.Comments = append(detail.Comments, models.Comment{
				TravelID: travel.ID,
				Author:   entry.Author,
				Content:  entry.Content,
			})
		}
	}

	comments, err := h.commentRepository.GetCommentsByTravelID(c.Request().Context(), travel.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	detail.Comments = append(detail.Comments, comments...)
	if detail.Comments == nil {
		detail.Comments = []models.Comment{}
	}

	detail.ReferencedPost = h.resolveRepost(c, travel)

	return c.JSON(http.StatusOK, detail)
}

// UpdateTravel replaces the editable fields of a post. The secret key
// is verified in the repository write path; a mismatch changes nothing.
func (h *TravelHandler) UpdateTravel(c echo.Context) error {
	id, err := parseTravelID(c)
	if err != nil {
		return err
	}

	var req models.UpdateTravelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := repositories.TravelUpdate{
		Title:      req.Title,
		Location:   req.Location,
		TravelType: req.TravelType,
		Photos:     req.Photos,
		Body:       req.Body,
	}

	if err := h.travelRepository.UpdateTravel(c.Request().Context(), id, req.SecretKey, update); err != nil {
		switch {
		case err == authgate.ErrSecretMismatch:
			return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect secret key!")
		case err == gorm.ErrRecordNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	travel, err := h.travelRepository.GetTravelByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, travel)
}

// DeleteTravel removes a post permanently. The secret key must verify
// and the caller must confirm; declining the confirmation aborts with
// no mutation.
func (h *TravelHandler) DeleteTravel(c echo.Context) error {
	id, err := parseTravelID(c)
	if err != nil {
		return err
	}

	var req models.DeleteTravelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// The secret is validated before the confirmation prompt; an
	// unconfirmed request with a wrong key answers 401, not 400.
	travel, err := h.travelRepository.GetTravelByID(c.Request().Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := authgate.Verify(req.SecretKey, travel.SecretHash); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect secret key!")
	}

	if !req.Confirm {
		return echo.NewHTTPError(http.StatusBadRequest, "Deletion not confirmed. This action cannot be undone.")
	}

	if err := h.travelRepository.DeleteTravel(c.Request().Context(), id, req.SecretKey); err != nil {
		switch {
		case err == authgate.ErrSecretMismatch:
			return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect secret key!")
		case err == gorm.ErrRecordNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.NoContent(http.StatusNoContent)
}

// resolveRepost locates the entry a repost references. New rows resolve
// through the stored post id; legacy rows fall back to parsing the
// reference line and looking the title/username pair up. Zero or
// ambiguous matches resolve to nothing, silently.
func (h *TravelHandler) resolveRepost(c echo.Context, travel *models.Travel) *models.Travel {
	if travel.RepostOf != nil {
		original, err := h.travelRepository.GetTravelByID(c.Request().Context(), *travel.RepostOf)
		if err != nil {
			return nil
		}
		return original
	}

	// Pre-migration rows carry the reference in the encoded thread;
	// once the startup migration moves that text into the body column,
	// the body is where the line survives.
	for _, text := range []string{travel.Description, travel.Body, travel.LegacyThread} {
		title, username, ok := repost.ParseReference(text)
		if !ok {
			continue
		}
		original, err := h.travelRepository.FindByTitleAndUsername(c.Request().Context(), title, username)
		if err != nil {
			return nil
		}
		return original
	}
	return nil
}

func parseTravelID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	return uint(id), nil
}
