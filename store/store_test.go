package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/noritama/dakoku/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "dakoku.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestSessionRoundTrip(t *testing.T) {
	c := newTestClient(t)

	sess, err := c.Session()
	if err != nil {
		t.Fatal(err)
	}

	if sess != nil {
		t.Fatalf("fresh store returned a session: %+v", sess)
	}

	want := &models.Session{
		Token: "tok-123",
		User:  models.User{ID: 7, Email: "aki@example.com", Name: "Aki"},
	}

	if err := c.SaveSession(want); err != nil {
		t.Fatal(err)
	}

	got, err := c.Session()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveReplacesWholesale(t *testing.T) {
	c := newTestClient(t)

	first := &models.Session{
		Token: "tok-1",
		User:  models.User{ID: 1, Name: "First", Role: "admin"},
	}

	if err := c.SaveSession(first); err != nil {
		t.Fatal(err)
	}

	second := &models.Session{
		Token: "tok-2",
		User:  models.User{ID: 2, Name: "Second"},
	}

	if err := c.SaveSession(second); err != nil {
		t.Fatal(err)
	}

	got, err := c.Session()
	if err != nil {
		t.Fatal(err)
	}

	// No field from the first session may leak into the second.
	if diff := cmp.Diff(second, got); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteSession(t *testing.T) {
	c := newTestClient(t)

	sess := &models.Session{Token: "tok-123"}

	if err := c.SaveSession(sess); err != nil {
		t.Fatal(err)
	}

	if err := c.DeleteSession(); err != nil {
		t.Fatal(err)
	}

	got, err := c.Session()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Fatalf("session still present after delete: %+v", got)
	}

	if got.LoggedIn() {
		t.Fatal("deleted session must read as logged out")
	}
}
