package history_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"vaultpub/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(context.Background(), filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	published := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []history.Entry{
		{RunID: "run-1", Source: "/vault/a.md", Target: "/site/blog/a.md", OriginalDate: "2023-05-01", AssetBearing: true, ImageCount: 2, ImageDir: "/site/static/photos/2023-05-01-a.md", PublishedAt: published},
		{RunID: "run-1", Source: "/vault/b.md", Target: "/mirror/b.md", OriginalDate: "2023-05-02"},
	}
	for _, e := range entries {
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Source != "/vault/b.md" || got[1].Source != "/vault/a.md" {
		t.Fatalf("expected newest first, got %s then %s", got[0].Source, got[1].Source)
	}
	if got[0].PublishedAt.IsZero() {
		t.Fatal("expected zero PublishedAt to be filled in")
	}
	first := got[1]
	if !first.AssetBearing || first.ImageCount != 2 || first.ImageDir == "" || first.RunID != "run-1" {
		t.Fatalf("unexpected entry %+v", first)
	}
	if !first.PublishedAt.Equal(published) {
		t.Fatalf("published_at = %v want %v", first.PublishedAt, published)
	}

	limited, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent(1): %v", err)
	}
	if len(limited) != 1 || limited[0].Source != "/vault/b.md" {
		t.Fatalf("unexpected limited result %+v", limited)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := history.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Record(ctx, history.Entry{RunID: "r", Source: "/s", Target: "/t", OriginalDate: "d"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store, err = history.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected persisted entry, got %d", len(got))
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := history.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_ = store.Close()

	if err := history.SetSchemaVersionForTest(path, 99); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if _, err := history.Open(ctx, path); !errors.Is(err, history.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
