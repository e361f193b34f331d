package handlers

import (
	"net/http"
	"strconv"

	"github.com/Meyyun/HobbyHub/pkg/geocode"
	"github.com/labstack/echo/v4"
)

// GeocodeHandler pre-fills the composer's location field from
// coordinates. Lookup is best effort: any failure degrades to the raw
// coordinates rather than an error.
type GeocodeHandler struct {
	geocoder *geocode.Client
}

// NewGeocodeHandler creates a new GeocodeHandler
func NewGeocodeHandler(geocoder *geocode.Client) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

// RegisterGeocodeRoutes registers geocoding routes
func (h *GeocodeHandler) RegisterGeocodeRoutes(g *echo.Group) {
	g.GET("/geocode/reverse", h.ReverseGeocode)
}

// ReverseGeocode resolves lat/lng to a human-readable location string
func (h *GeocodeHandler) ReverseGeocode(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid lat parameter")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid lng parameter")
	}

	location, err := h.geocoder.Reverse(c.Request().Context(), lat, lng)
	if err != nil {
		c.Logger().Infof("could not get location name, using coordinates: %v", err)
		location = geocode.Fallback(lat, lng)
	}

	return c.JSON(http.StatusOK, echo.Map{"location": location})
}
