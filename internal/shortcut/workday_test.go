package shortcut

import (
	"errors"
	"testing"
	"time"
)

func TestClosestWorkday(t *testing.T) {
	// Mon 2024-05-13 through Fri 2024-05-17 are fixed points.
	for d := 13; d <= 17; d++ {
		date := time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
		if got := ClosestWorkday(date); !got.Equal(date) {
			t.Fatalf("ClosestWorkday(%s) = %s, want unchanged", date.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	}
	sat := time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)
	if got := ClosestWorkday(sat); got.Day() != 17 {
		t.Fatalf("Saturday adjusted to day %d, want 17", got.Day())
	}
	sun := time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC)
	if got := ClosestWorkday(sun); got.Day() != 20 {
		t.Fatalf("Sunday adjusted to day %d, want 20", got.Day())
	}
}

func TestNthWorkdayOfMonth(t *testing.T) {
	// February 2021 starts on a Monday and has exactly 20 business days.
	feb := time.Date(2021, 2, 10, 0, 0, 0, 0, time.UTC)

	got, err := nthWorkdayOfMonth(feb, 1, false)
	if err != nil {
		t.Fatalf("nthWorkdayOfMonth(1, false) error: %v", err)
	}
	if got.Day() != 1 {
		t.Fatalf("first business day = %d, want 1", got.Day())
	}

	got, err = nthWorkdayOfMonth(feb, 1, true)
	if err != nil {
		t.Fatalf("nthWorkdayOfMonth(1, true) error: %v", err)
	}
	if got.Day() != 26 {
		t.Fatalf("last business day = %d, want 26", got.Day())
	}

	got, err = nthWorkdayOfMonth(feb, 20, false)
	if err != nil {
		t.Fatalf("nthWorkdayOfMonth(20, false) error: %v", err)
	}
	if got.Day() != 26 {
		t.Fatalf("20th business day = %d, want 26", got.Day())
	}

	for _, fromEnd := range []bool{false, true} {
		if _, err := nthWorkdayOfMonth(feb, 21, fromEnd); !errors.Is(err, ErrWeekdayNotFound) {
			t.Fatalf("nthWorkdayOfMonth(21, %v) error = %v, want ErrWeekdayNotFound", fromEnd, err)
		}
	}
}

func TestWorkdayMarkerAfterAbsoluteDate(t *testing.T) {
	p := newTestParser(t)
	// 05/18 is a Saturday; the trailing dot pulls it back to Friday.
	got, err := p.Parse("05/18.")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if want := "2024-05-17T00:00:00Z"; got.Format(time.RFC3339) != want {
		t.Fatalf("Parse(05/18.) = %s, want %s", got.Format(time.RFC3339), want)
	}
	// 05/19 is a Sunday and shifts forward instead.
	got, err = p.Parse("05/19.")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if want := "2024-05-20T00:00:00Z"; got.Format(time.RFC3339) != want {
		t.Fatalf("Parse(05/19.) = %s, want %s", got.Format(time.RFC3339), want)
	}
}
