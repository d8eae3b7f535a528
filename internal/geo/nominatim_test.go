package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HoussamELM/PharmaRapide/config"
)

func newTestGeocoder(serverURL string) *Geocoder {
	return NewGeocoder(config.GeocodingConfig{Endpoint: serverURL, UserAgent: "Pharmarapide/1.0"})
}

func TestReverse_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		if got := r.Header.Get("User-Agent"); got != "Pharmarapide/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"Technopark, Tanger, Maroc"}`))
	}))
	defer server.Close()

	address, err := newTestGeocoder(server.URL).Reverse(context.Background(), 35.7595, -5.834)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if address != "Technopark, Tanger, Maroc" {
		t.Fatalf("Reverse = %q", address)
	}
}

func TestReverse_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer server.Close()

	if _, err := newTestGeocoder(server.URL).Reverse(context.Background(), 0, 0); err == nil {
		t.Fatalf("Reverse must surface the upstream error")
	}
}

func TestReverse_EmptyDisplayNameFallsBackToCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	address, err := newTestGeocoder(server.URL).Reverse(context.Background(), 35.7595, -5.834)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if address != "35.759500, -5.834000" {
		t.Fatalf("Reverse fallback = %q, want formatted coordinates", address)
	}
}

func TestReverse_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := newTestGeocoder(server.URL).Reverse(context.Background(), 1, 1); err == nil {
		t.Fatalf("Reverse must fail on a non-200 response")
	}
}
