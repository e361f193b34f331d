package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Meyyun/HobbyHub/pkg/geocode"
	"github.com/labstack/echo/v4"
)

func reverseRequest(t *testing.T, h *GeocodeHandler, query string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/geocode/reverse?"+query, nil)
	rec := httptest.NewRecorder()
	return rec, h.ReverseGeocode(e.NewContext(req, rec))
}

func TestReverseGeocodeFallsBackToCoordinates(t *testing.T) {
	// no API key configured, so lookup fails fast and the handler
	// degrades to raw coordinates instead of erroring
	h := NewGeocodeHandler(geocode.NewClient("", ""))

	rec, err := reverseRequest(t, h, "lat=36.39321&lng=25.46151")
	if err != nil {
		t.Fatalf("ReverseGeocode: %v", err)
	}

	var resp struct {
		Location string `json:"location"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Location != "36.3932, 25.4615" {
		t.Fatalf("location: got %q", resp.Location)
	}
}

func TestReverseGeocodeResolvesLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"formatted":"Santorini, Greece"}]}`))
	}))
	defer srv.Close()

	h := NewGeocodeHandler(geocode.NewClient(srv.URL, "test-key"))

	rec, err := reverseRequest(t, h, "lat=36.3932&lng=25.4615")
	if err != nil {
		t.Fatalf("ReverseGeocode: %v", err)
	}

	var resp struct {
		Location string `json:"location"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Location != "Santorini, Greece" {
		t.Fatalf("location: got %q", resp.Location)
	}
}

func TestReverseGeocodeInvalidCoordinates(t *testing.T) {
	h := NewGeocodeHandler(geocode.NewClient("", ""))

	_, err := reverseRequest(t, h, "lat=abc&lng=25.4")
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", got)
	}
}
