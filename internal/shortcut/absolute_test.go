package shortcut

import (
	"testing"
	"time"
)

func TestMatchAbsoluteDate(t *testing.T) {
	en, err := ResolveLocale("en")
	if err != nil {
		t.Fatalf("ResolveLocale: %v", err)
	}
	de, err := ResolveLocale("de")
	if err != nil {
		t.Fatalf("ResolveLocale: %v", err)
	}

	cases := []struct {
		loc      Localization
		in       string
		want     string
		wantRest string
	}{
		// en patterns are month/day.
		{en, "05/20", "2024-05-20", ""},
		{en, "5/2 +1d", "2024-05-02", "+1d"},
		{en, "12/31/2030", "2030-12-31", ""},
		{en, "12/31/27", "2027-12-31", ""},
		// de patterns are day.month, year optional.
		{de, "23.03", "2024-03-23", ""},
		{de, "23.03.25", "2025-03-23", ""},
		{de, "23.03.2027", "2027-03-23", ""},
		{de, "1.2 +1t", "2024-02-01", "+1t"},
		// A bare trailing dot stays behind as the workday marker.
		{de, "23.03.", "2024-03-23", "."},
	}
	ref := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	for _, tc := range cases {
		got, rest, ok := matchAbsoluteDate(tc.loc, ref, tc.in)
		if !ok {
			t.Fatalf("matchAbsoluteDate(%q): no match", tc.in)
		}
		if got.Format("2006-01-02") != tc.want {
			t.Fatalf("matchAbsoluteDate(%q) = %s, want %s", tc.in, got.Format("2006-01-02"), tc.want)
		}
		if rest != tc.wantRest {
			t.Fatalf("matchAbsoluteDate(%q) rest = %q, want %q", tc.in, rest, tc.wantRest)
		}
	}
}

func TestMatchAbsoluteDateNoMatch(t *testing.T) {
	en, err := ResolveLocale("en")
	if err != nil {
		t.Fatalf("ResolveLocale: %v", err)
	}
	ref := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"+1d", "t", "foo", ""} {
		if _, rest, ok := matchAbsoluteDate(en, ref, in); ok || rest != in {
			t.Fatalf("matchAbsoluteDate(%q) matched unexpectedly", in)
		}
	}
}

func TestMatchAbsoluteDateOnlyAtHead(t *testing.T) {
	en, err := ResolveLocale("en")
	if err != nil {
		t.Fatalf("ResolveLocale: %v", err)
	}
	ref := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	if _, _, ok := matchAbsoluteDate(en, ref, "x 05/20"); ok {
		t.Fatalf("mid-string date must not match")
	}
}
