package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"saveedit/internal/history"
	"saveedit/internal/testsupport"
)

func TestOpenDisabled(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistoryDisabled())

	if _, err := history.Open(context.Background(), cfg); !errors.Is(err, history.ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if _, err := history.Open(context.Background(), nil); !errors.Is(err, history.ErrDisabled) {
		t.Fatalf("expected ErrDisabled for nil config, got %v", err)
	}
}

func TestRecordOpenAndRecent(t *testing.T) {
	ctx := context.Background()
	store, err := history.Open(ctx, testsupport.NewConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"one", "two", "three"} {
		err := store.RecordOpen(ctx, history.Entry{
			ID:              id,
			Title:           "Jungle Level",
			SourcePath:      "saves/jungle.as",
			Mode:            "decl",
			BlockCount:      2,
			SelectedOrdinal: 0,
			OpenedAt:        base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("RecordOpen(%s): %v", id, err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "three" || entries[1].ID != "two" {
		t.Fatalf("entries not ordered newest first: %q, %q", entries[0].ID, entries[1].ID)
	}
	if entries[0].ExportPath != "" || !entries[0].ExportedAt.IsZero() {
		t.Fatalf("unexported entry carries export fields: %+v", entries[0])
	}
}

func TestRecordExport(t *testing.T) {
	ctx := context.Background()
	store, err := history.Open(ctx, testsupport.NewConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.RecordOpen(ctx, history.Entry{ID: "abc", Title: "Save", Mode: "waves"}); err != nil {
		t.Fatalf("RecordOpen: %v", err)
	}
	if err := store.RecordExport(ctx, "abc", "saves/jungle_env_edited.as"); err != nil {
		t.Fatalf("RecordExport: %v", err)
	}
	if err := store.RecordExport(ctx, "missing", "x.as"); err == nil {
		t.Fatal("expected error exporting an unknown session id")
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ExportPath != "saves/jungle_env_edited.as" {
		t.Fatalf("export path not recorded: %+v", entries[0])
	}
	if entries[0].ExportedAt.IsZero() {
		t.Fatal("exported_at not recorded")
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store, err := history.Open(ctx, testsupport.NewConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.RecordOpen(ctx, history.Entry{ID: "x", Title: "Save"}); err != nil {
		t.Fatalf("RecordOpen: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty journal after clear, got %d entries", len(entries))
	}
}

func TestReopenKeepsRows(t *testing.T) {
	ctx := context.Background()
	cfg := testsupport.NewConfig(t)

	store, err := history.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.RecordOpen(ctx, history.Entry{ID: "keep", Title: "Save"}); err != nil {
		t.Fatalf("RecordOpen: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := history.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "keep" {
		t.Fatalf("rows lost across reopen: %+v", entries)
	}
}
