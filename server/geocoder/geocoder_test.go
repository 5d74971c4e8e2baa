package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "1 Main St, Cambridge MA" {
			t.Errorf("q = %q", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "librarymap-test/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Write([]byte(`[{"lat": "42.3736", "lon": "-71.1097"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "librarymap-test/1.0")
	coords, err := client.Geocode(context.Background(), "1 Main St, Cambridge MA")
	if err != nil {
		t.Fatalf("Geocode() error = %v", err)
	}
	if coords == nil {
		t.Fatal("Geocode() = nil, want coordinates")
	}
	if coords.Lat != 42.3736 || coords.Lng != -71.1097 {
		t.Errorf("Geocode() = %+v", coords)
	}
}

func TestGeocodeNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "librarymap-test/1.0")
	coords, err := client.Geocode(context.Background(), "nowhere")
	if err != nil {
		t.Fatalf("Geocode() error = %v", err)
	}
	if coords != nil {
		t.Errorf("Geocode() = %+v, want nil for no result", coords)
	}
}

func TestGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "librarymap-test/1.0")
	if _, err := client.Geocode(context.Background(), "1 Main St"); err == nil {
		t.Error("Geocode() error = nil, want error for non-200 status")
	}
}

func TestGeocodeMalformedCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"lat": "not-a-number", "lon": "-71.1"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "librarymap-test/1.0")
	if _, err := client.Geocode(context.Background(), "1 Main St"); err == nil {
		t.Error("Geocode() error = nil, want error for malformed latitude")
	}
}
