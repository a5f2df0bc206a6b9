package holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const feed = `{
	"Neujahrstag": {"datum": "2026-01-01", "hinweis": ""},
	"Heilige Drei Könige": {"datum": "2026-01-06", "hinweis": ""},
	"Tag der Arbeit": {"datum": "2026-05-01", "hinweis": ""}
}`

func TestHolidaysInvertsFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	holidays, err := NewClient(srv.URL).Holidays(context.Background())
	if err != nil {
		t.Fatalf("Holidays: %v", err)
	}
	if len(holidays) != 3 {
		t.Fatalf("holidays = %v", holidays)
	}
	if holidays["2026-01-06"] != "Heilige Drei Könige" {
		t.Errorf("holidays[2026-01-06] = %q", holidays["2026-01-06"])
	}
}

func TestHolidaysServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Holidays(context.Background()); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestHolidaysBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Holidays(context.Background()); err == nil {
		t.Fatal("expected an error for a malformed body")
	}
}
