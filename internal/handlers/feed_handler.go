package handlers

import (
	"net/http"

	"github.com/Meyyun/HobbyHub/internal/feed"
	"github.com/Meyyun/HobbyHub/internal/models"
	"github.com/Meyyun/HobbyHub/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler serves the journey feed: the full collection narrowed by
// search, travel-type facet and sort key.
type FeedHandler struct {
	travelRepository repositories.TravelRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(travelRepo repositories.TravelRepository) *FeedHandler {
	return &FeedHandler{travelRepository: travelRepo}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts", h.GetFeed)
	g.GET("/posts/types", h.GetTravelTypes)
}

// FeedResponse carries the derived display list plus the facet list and
// collection stats, both computed from the unfiltered base.
type FeedResponse struct {
	Posts  []models.Travel `json:"posts"`
	Facets []string        `json:"facets"`
	Stats  feed.Stats      `json:"stats"`
}

// GetFeed loads the full collection newest-first and derives the view
// from the three query parameters
func (h *FeedHandler) GetFeed(c echo.Context) error {
	posts, err := h.travelRepository.GetAllTravels(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	params := feed.Params{
		Search:     c.QueryParam("search"),
		TravelType: c.QueryParam("travel_type"),
		SortBy:     c.QueryParam("sort"),
	}

	return c.JSON(http.StatusOK, FeedResponse{
		Posts:  feed.Apply(posts, params),
		Facets: feed.Facets(posts),
		Stats:  feed.Summarize(posts),
	})
}

// GetTravelTypes lists the journey types the composer offers
func (h *FeedHandler) GetTravelTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"types": models.TravelTypes})
}
