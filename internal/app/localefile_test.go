package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agis/dshort/internal/shortcut"
)

func writeLocaleFile(t *testing.T, content string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "locale.yaml")
	if err := os.WriteFile(f, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return f
}

func TestLoadLocaleFile(t *testing.T) {
	f := writeLocaleFile(t, `
year: [cy]
month: [mo]
week: [wk]
day: [sol]
today: [now]
am: [am]
pm: [pm]
patterns:
  - pattern: '(\d{1,2})-(\d{1,2})'
    order: month-day
  - pattern: '^(\d{1,2})\.(\d{1,2})'
`)
	loc, err := loadLocaleFile(f)
	if err != nil {
		t.Fatalf("loadLocaleFile error: %v", err)
	}
	if len(loc.Day) != 1 || loc.Day[0] != "sol" {
		t.Fatalf("day=%v", loc.Day)
	}
	if len(loc.DatePatterns) != 2 {
		t.Fatalf("patterns=%d want=2", len(loc.DatePatterns))
	}
	if loc.DatePatterns[0].Order != shortcut.MonthDay {
		t.Fatalf("pattern 1 order=%v want=month-day", loc.DatePatterns[0].Order)
	}
	if got := loc.DatePatterns[0].Regexp.String(); got[0] != '^' {
		t.Fatalf("pattern 1 must be anchored, got %q", got)
	}
	if loc.DatePatterns[1].Order != shortcut.DayMonth {
		t.Fatalf("pattern 2 order=%v want=day-month", loc.DatePatterns[1].Order)
	}
}

func TestLoadLocaleFileBadOrder(t *testing.T) {
	f := writeLocaleFile(t, `
day: [d]
today: [t]
patterns:
  - pattern: '(\d+)/(\d+)'
    order: sideways
`)
	if _, err := loadLocaleFile(f); err == nil {
		t.Fatalf("expected error for unknown order")
	}
}

func TestLoadLocaleFileBadPattern(t *testing.T) {
	f := writeLocaleFile(t, `
day: [d]
patterns:
  - pattern: '(\d+'
`)
	if _, err := loadLocaleFile(f); err == nil {
		t.Fatalf("expected error for invalid regexp")
	}
}

func TestLoadLocaleFileMissing(t *testing.T) {
	if _, err := loadLocaleFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
