package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/noritama/dakoku/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL, 5*time.Second)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}

		if got := r.PostForm.Get("email"); got != "aki@example.com" {
			t.Errorf("email = %q", got)
		}

		if got := r.PostForm.Get("password"); got != "hunter2" {
			t.Errorf("password = %q", got)
		}

		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must not send an Authorization header, got %q", got)
		}

		w.Write([]byte(`{"token":"tok-123","user":{"id":7,"email":"aki@example.com","name":"Aki"}}`))
	}))

	sess, err := c.Login(context.Background(), "aki@example.com", "hunter2")
	if err != nil {
		t.Fatal(err)
	}

	want := &models.Session{
		Token: "tok-123",
		User:  models.User{ID: 7, Email: "aki@example.com", Name: "Aki"},
	}

	if diff := cmp.Diff(want, sess); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestLoginRejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Login(context.Background(), "aki@example.com", "wrong")

	var authErr *AuthError

	if !errors.As(err, &authErr) {
		t.Fatalf("want *AuthError, got %v", err)
	}

	if authErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", authErr.StatusCode)
	}
}

func TestFetchDaily(t *testing.T) {
	start := "2025-09-03T09:00:00+09:00"

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/attendance/me/daily" {
			t.Errorf("path = %s", r.URL.Path)
		}

		if got := r.URL.Query().Get("date"); got != "2025-09-03" {
			t.Errorf("date = %q", got)
		}

		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}

		w.Write([]byte(`{
			"date": "2025-09-03",
			"actual": {"start": "2025-09-03T09:00:00+09:00", "end": null},
			"totals": {"work": 120, "break": 0, "overtime": 0, "night": 0, "holiday": 0},
			"status": "open"
		}`))
	}))
	c.SetToken("tok-123")

	rec, err := c.FetchDaily(context.Background(), "2025-09-03")
	if err != nil {
		t.Fatal(err)
	}

	want := &models.DailyRecord{
		Date:   "2025-09-03",
		Actual: models.Actual{Start: &start},
		Totals: models.Totals{Work: 120},
		Status: models.StatusOpen,
	}

	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchDailyUnauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// An expired or missing token is only discovered here.
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no Authorization header, got %q", got)
		}

		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.FetchDaily(context.Background(), "2025-09-03")

	var fetchErr *FetchError

	if !errors.As(err, &fetchErr) {
		t.Fatalf("want *FetchError, got %v", err)
	}

	if fetchErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", fetchErr.StatusCode)
	}
}

func TestSubmitEntry(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/timeclock/time_entries" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}

		form := map[string]string{
			"kind":        r.PostForm.Get("kind"),
			"happened_at": r.PostForm.Get("happened_at"),
			"source":      r.PostForm.Get("source"),
		}

		want := map[string]string{
			"kind":        "clock_in",
			"happened_at": "2025-09-03T09:00:00+09:00",
			"source":      "cli",
		}

		if diff := cmp.Diff(want, form); diff != "" {
			t.Errorf("form mismatch (-want +got):\n%s", diff)
		}

		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}

		w.Write([]byte(`{"ok":true}`))
	}))
	c.SetToken("tok-123")

	err := c.SubmitEntry(
		context.Background(),
		models.ClockIn,
		"2025-09-03T09:00:00+09:00",
		"cli",
	)
	if err != nil {
		t.Fatal(err)
	}
}

func TestSubmitEntryRejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("duplicate clock_in for date"))
	}))
	c.SetToken("tok-123")

	err := c.SubmitEntry(
		context.Background(),
		models.ClockIn,
		"2025-09-03T09:00:00+09:00",
		"cli",
	)

	var submitErr *SubmitError

	if !errors.As(err, &submitErr) {
		t.Fatalf("want *SubmitError, got %v", err)
	}

	if submitErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", submitErr.StatusCode)
	}

	if submitErr.Detail != "duplicate clock_in for date" {
		t.Fatalf("detail = %q, server detail must be surfaced", submitErr.Detail)
	}
}

func TestMe(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Errorf("path = %s", r.URL.Path)
		}

		w.Write([]byte(`{"id":7,"email":"aki@example.com","name":"Aki","role":"member"}`))
	}))
	c.SetToken("tok-123")

	u, err := c.Me(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := &models.User{ID: 7, Email: "aki@example.com", Name: "Aki", Role: "member"}

	if diff := cmp.Diff(want, u); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}
}
