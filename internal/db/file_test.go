package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOpenFileCreatesEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pages.json")

	backend, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected page file to exist: %v", err)
	}
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", raw)
	}

	pages, err := backend.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if pages == nil || len(pages) != 0 {
		t.Fatalf("expected empty non-nil collection, got %#v", pages)
	}
}

func TestOpenFileKeepsExistingCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	seed := `[{"id": 7, "title": "Bio", "slug": "bio", "content": "Hi", "createdAt": "2025-01-02T03:04:05.678Z"}]`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	backend, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}

	pages, err := backend.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(pages) != 1 || pages[0].ID != 7 || pages[0].Slug != "bio" {
		t.Fatalf("unexpected pages: %#v", pages)
	}
	want := time.Date(2025, 1, 2, 3, 4, 5, 678_000_000, time.UTC)
	if !pages[0].CreatedAt.Equal(want) {
		t.Fatalf("expected createdAt %v, got %v", want, pages[0].CreatedAt)
	}
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	backend, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pages := []Page{
		{ID: 1, Title: "Bio", Slug: "bio", Content: "Hello.\nWorld.", CreatedAt: created},
		{ID: 2, Title: "Contact", Slug: "contact", Content: "Mail", CreatedAt: created.Add(time.Minute)},
	}
	if err := backend.Save(context.Background(), pages); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read page file: %v", err)
	}
	for _, field := range []string{`"id"`, `"title"`, `"slug"`, `"content"`, `"createdAt"`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("expected persisted JSON to contain %s, got %s", field, raw)
		}
	}

	loaded, err := backend.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded) != len(pages) {
		t.Fatalf("expected %d pages, got %d", len(pages), len(loaded))
	}
	for i := range pages {
		if loaded[i].ID != pages[i].ID || loaded[i].Slug != pages[i].Slug ||
			loaded[i].Title != pages[i].Title || loaded[i].Content != pages[i].Content ||
			!loaded[i].CreatedAt.Equal(pages[i].CreatedAt) {
			t.Fatalf("page %d did not round-trip: %#v vs %#v", i, loaded[i], pages[i])
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestFileBackendSaveKeepsReadableMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	backend, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}

	check := func(stage string) {
		t.Helper()
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat after %s: %v", stage, err)
		}
		if mode := info.Mode().Perm(); mode != 0o644 {
			t.Fatalf("expected mode 0644 after %s, got %v", stage, mode)
		}
	}
	check("open")

	pages := []Page{{ID: 1, Title: "Bio", Slug: "bio", Content: "Hi", CreatedAt: time.Now().UTC()}}
	if err := backend.Save(context.Background(), pages); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	check("save")
}

func TestFileBackendLoadRejectsBrokenFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "garbage", content: "{oops"},
		{name: "null", content: "null"},
		{name: "object", content: `{"id": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pages.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}
			backend := &FileBackend{path: path}
			if _, err := backend.Load(context.Background()); err == nil {
				t.Fatal("expected Load to fail")
			}
		})
	}
}

func TestFileBackendLoadMissingFile(t *testing.T) {
	backend := &FileBackend{path: filepath.Join(t.TempDir(), "gone.json")}
	if _, err := backend.Load(context.Background()); err == nil {
		t.Fatal("expected Load to fail for a missing file")
	}
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	gdb := setupSQLiteBackendTestDB(t)
	backend := NewSQLiteBackend(gdb)
	ctx := context.Background()

	empty, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty table, got %#v", empty)
	}

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pages := []Page{{ID: 1, Title: "Bio", Slug: "bio", Content: "Hello.", CreatedAt: created}}
	if err := backend.Save(ctx, pages); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	pages = append(pages, Page{ID: 2, Title: "Contact", Slug: "contact", Content: "Mail", CreatedAt: created.Add(time.Hour)})
	if err := backend.Save(ctx, pages); err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}

	loaded, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Slug != "bio" || loaded[1].Slug != "contact" {
		t.Fatalf("unexpected pages: %#v", loaded)
	}
	if !loaded[1].CreatedAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("expected createdAt to be kept, got %v", loaded[1].CreatedAt)
	}
}

func TestCopyPagesBetweenBackends(t *testing.T) {
	ctx := context.Background()

	fileBackend, err := OpenFile(filepath.Join(t.TempDir(), "pages.json"))
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seed := []Page{
		{ID: 1, Title: "Bio", Slug: "bio", Content: "Hello.", CreatedAt: created},
		{ID: 2, Title: "Contact", Slug: "contact", Content: "Mail", CreatedAt: created},
	}
	if err := fileBackend.Save(ctx, seed); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	sqliteBackend := NewSQLiteBackend(setupSQLiteBackendTestDB(t))

	copied, err := CopyPages(ctx, fileBackend, sqliteBackend)
	if err != nil {
		t.Fatalf("CopyPages returned error: %v", err)
	}
	if copied != 2 {
		t.Fatalf("expected 2 pages copied, got %d", copied)
	}

	loaded, err := sqliteBackend.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Slug != "bio" || loaded[1].Slug != "contact" {
		t.Fatalf("unexpected copied pages: %#v", loaded)
	}

	if _, err := CopyPages(ctx, fileBackend, sqliteBackend); !errors.Is(err, ErrTargetNotEmpty) {
		t.Fatalf("expected ErrTargetNotEmpty on second copy, got %v", err)
	}
}
