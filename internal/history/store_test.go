package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		e := Entry{
			Shortcut:  "+1d",
			Locale:    "en",
			Reference: base,
			Resolved:  base.AddDate(0, 0, 1),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		rec, err := s.Record(ctx, e)
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		if rec.ID == "" {
			t.Fatalf("Record left ID empty")
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(got))
	}
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Fatalf("Recent not newest-first: %s then %s", got[0].CreatedAt, got[1].CreatedAt)
	}
	if got[0].Shortcut != "+1d" || got[0].Locale != "en" {
		t.Fatalf("entry round-trip mismatch: %+v", got[0])
	}
	if !got[0].Resolved.Equal(base.AddDate(0, 0, 1)) {
		t.Fatalf("resolved time mismatch: %s", got[0].Resolved)
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if _, err := s.Record(ctx, Entry{Shortcut: "t", Locale: "en", Reference: time.Now(), Resolved: time.Now()}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	n, err := s.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 1 {
		t.Fatalf("Clear removed %d rows, want 1", n)
	}
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("store not empty after clear: %d entries", len(got))
	}
}
