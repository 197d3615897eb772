package store

import (
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if got := s.Get(AuthTokenKey); got != "" {
		t.Errorf("expected empty value, got %q", got)
	}

	s.Set(AuthTokenKey, "tok")
	if got := s.Get(AuthTokenKey); got != "tok" {
		t.Errorf("expected tok, got %q", got)
	}

	s.Clear(AuthTokenKey)
	if got := s.Get(AuthTokenKey); got != "" {
		t.Errorf("expected cleared value, got %q", got)
	}
	// Clearing again is a no-op.
	s.Clear(AuthTokenKey)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Set(AuthTokenKey, "tok")
	first.Set(ThemeKey, "dark")

	second, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := second.Get(AuthTokenKey); got != "tok" {
		t.Errorf("expected persisted token, got %q", got)
	}
	if got := second.Get(ThemeKey); got != "dark" {
		t.Errorf("expected persisted theme, got %q", got)
	}

	second.Clear(AuthTokenKey)
	third, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := third.Get(AuthTokenKey); got != "" {
		t.Errorf("expected cleared token, got %q", got)
	}
	if got := third.Get(ThemeKey); got != "dark" {
		t.Errorf("expected theme untouched by token clear, got %q", got)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Get(AuthTokenKey); got != "" {
		t.Errorf("expected empty store, got %q", got)
	}
}
