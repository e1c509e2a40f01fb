package shortcut

import (
	"errors"
	"testing"
	"time"
)

func TestMonthEndClamping(t *testing.T) {
	cases := []struct {
		ref  time.Time
		in   string
		want string
	}{
		// Jan 31 + 1 month lands on the last day of February.
		{time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), "1m", "2024-02-29T00:00:00Z"},
		{time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), "1m", "2023-02-28T00:00:00Z"},
		// 31-day month into a 30-day month.
		{time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), "1m", "2024-04-30T00:00:00Z"},
		// Clamping applies going backwards too.
		{time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), "-1m", "2024-02-29T00:00:00Z"},
		// Month underflow rolls the year.
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "-2m", "2023-11-15T00:00:00Z"},
		// Month overflow rolls the year.
		{time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), "3m", "2025-02-15T00:00:00Z"},
	}
	for _, tc := range cases {
		p, err := New(WithReference(tc.ref))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		got, err := p.Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) from %s error: %v", tc.in, tc.ref, err)
		}
		if got.Format(time.RFC3339) != tc.want {
			t.Fatalf("Parse(%q) from %s = %s, want %s", tc.in, tc.ref.Format("2006-01-02"), got.Format(time.RFC3339), tc.want)
		}
	}
}

func TestRelativePartsLeftToRight(t *testing.T) {
	// Each part mutates the running date before the next is evaluated:
	// Jan 31 + 1 month clamps to Feb 29, then +1 day is Mar 1.
	p, err := New(WithReference(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := p.Parse("1m 1d")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if want := "2024-03-01T00:00:00Z"; got.Format(time.RFC3339) != want {
		t.Fatalf("Parse(1m 1d) = %s, want %s", got.Format(time.RFC3339), want)
	}
}

func TestTodayTokenIsNoOp(t *testing.T) {
	p := newTestParser(t)
	withToday, err := p.Parse("+1d t")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	without, err := p.Parse("+1d")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !withToday.Equal(without) {
		t.Fatalf("today token changed result: %s vs %s", withToday, without)
	}
}

func TestSplitParts(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"+1d", []string{"+1d"}},
		{"+ 1d", []string{"+1d"}},
		{"1y 2m -3d", []string{"1y", "2m", "-3d"}},
		{"1y2m-3d", []string{"1y2m", "-3d"}},
	}
	for _, tc := range cases {
		got, err := splitParts(tc.in)
		if err != nil {
			t.Fatalf("splitParts(%q) error: %v", tc.in, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("splitParts(%q) = %v, want %v", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("splitParts(%q) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
	if _, err := splitParts("1d +"); !errors.Is(err, ErrInvalidPartFormat) {
		t.Fatalf("trailing sign error = %v, want ErrInvalidPartFormat", err)
	}
}

func TestWeekdayUnit(t *testing.T) {
	p := newTestParser(t) // May 2024: first business day Wed May 1, last Fri May 31
	cases := []struct {
		in   string
		want string
	}{
		{"wd", "2024-05-01T00:00:00Z"},
		{"3wd", "2024-05-03T00:00:00Z"},
		{"-wd", "2024-05-31T00:00:00Z"},
		{"-2wd", "2024-05-30T00:00:00Z"},
	}
	for _, tc := range cases {
		got, err := p.Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.in, err)
		}
		if got.Format(time.RFC3339) != tc.want {
			t.Fatalf("Parse(%q) = %s, want %s", tc.in, got.Format(time.RFC3339), tc.want)
		}
	}
	// May 2024 has 23 business days.
	if _, err := p.Parse("24wd"); !errors.Is(err, ErrWeekdayNotFound) {
		t.Fatalf("Parse(24wd) error = %v, want ErrWeekdayNotFound", err)
	}
}

func TestMagnitudeDefaultsToOne(t *testing.T) {
	p := newTestParser(t)
	a, err := p.Parse("d")
	if err != nil {
		t.Fatalf("Parse(d) error: %v", err)
	}
	b, err := p.Parse("1d")
	if err != nil {
		t.Fatalf("Parse(1d) error: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("bare unit and magnitude 1 differ: %s vs %s", a, b)
	}
}
