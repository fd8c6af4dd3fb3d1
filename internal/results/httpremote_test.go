package results

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oyunsanaa/oyunsanaa/internal/identity"
)

func TestHTTPRemoteSave(t *testing.T) {
	var got ResultPayload
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/results" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	remote := NewHTTPRemote(srv.URL, "tok-1")
	err := remote.Save(context.Background(), identity.Identity{ID: "u1"}, sampleResult("check", 0.5))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if auth != "Bearer tok-1" {
		t.Errorf("authorization = %q", auth)
	}
	if got.TestSlug != "check" || got.ScorePct != 50 {
		t.Errorf("payload = %+v", got)
	}
}

func TestHTTPRemoteSaveStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusUnauthorized, func(err error) bool { return errors.Is(err, identity.ErrUnauthorized) }},
		{http.StatusBadRequest, func(err error) bool { return errors.Is(err, ErrInvalidInput) }},
		{http.StatusServiceUnavailable, func(err error) bool {
			var su *ErrStoreUnavailable
			return errors.As(err, &su)
		}},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		remote := NewHTTPRemote(srv.URL, "tok")
		err := remote.Save(context.Background(), identity.Identity{ID: "u1"}, sampleResult("check", 0.5))
		if err == nil || !tt.check(err) {
			t.Errorf("status %d: got %v", tt.status, err)
		}
		srv.Close()
	}
}

func TestHTTPRemoteLatest(t *testing.T) {
	created := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/results/latest" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("slug") != "check" {
			t.Errorf("slug = %q", r.URL.Query().Get("slug"))
		}
		_ = json.NewEncoder(w).Encode(StoredPayload{
			UserID:    "u1",
			TestSlug:  "check",
			TestTitle: "Check",
			ScorePct:  62,
			BandTitle: "Steady",
			CreatedAt: created,
		})
	}))
	defer srv.Close()

	remote := NewHTTPRemote(srv.URL, "tok")
	got, err := remote.Latest(context.Background(), "u1", "check")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a row")
	}
	if got.ScorePct != 62 || !got.CreatedAt.Equal(created) {
		t.Errorf("row = %+v", got)
	}
}

func TestHTTPRemoteLatestAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	remote := NewHTTPRemote(srv.URL, "tok")
	got, err := remote.Latest(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent row, got %+v", got)
	}
}

func TestHTTPRemoteUnreachable(t *testing.T) {
	remote := NewHTTPRemote("http://127.0.0.1:1", "tok")
	err := remote.Save(context.Background(), identity.Identity{ID: "u1"}, sampleResult("check", 0.5))
	var su *ErrStoreUnavailable
	if !errors.As(err, &su) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
