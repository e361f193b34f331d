package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReverseReturnsFormattedLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in request: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"formatted":"Santorini, Greece"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	got, err := client.Reverse(context.Background(), 36.3932, 25.4615)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if got != "Santorini, Greece" {
		t.Fatalf("got %q", got)
	}
}

func TestReverseNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	if _, err := client.Reverse(context.Background(), 0, 0); err == nil {
		t.Fatal("expected an error for empty results")
	}
}

func TestReverseFailsFastWithoutKey(t *testing.T) {
	client := NewClient("", "")
	if _, err := client.Reverse(context.Background(), 1, 2); err == nil {
		t.Fatal("expected an error with no api key")
	}
}

func TestReverseNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	if _, err := client.Reverse(context.Background(), 1, 2); err == nil {
		t.Fatal("expected an error for non-200 status")
	}
}

func TestFallback(t *testing.T) {
	if got := Fallback(36.39321, 25.46151); got != "36.3932, 25.4615" {
		t.Fatalf("got %q", got)
	}
}
