package shortcut

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock triple applied to the resolved date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses the HH[:MM[:SS]] form used for the configured
// default time. Format and range problems are reported separately so a host
// can distinguish a typo from an out-of-range value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidDefaultTimeFormat, s)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidDefaultTimeFormat, s)
		}
		nums[i] = n
	}
	tod := TimeOfDay{Hour: nums[0], Minute: nums[1], Second: nums[2]}
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 || tod.Second < 0 || tod.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidDefaultTimeValue, s)
	}
	return tod, nil
}

// compileTimeRegexp builds the trailing-time matcher for a locale. The time
// expression is anchored to the end of the input and must be preceded by
// whitespace or start-of-string, so digits embedded in a date ("23.03") are
// never mistaken for a clock.
func compileTimeRegexp(loc Localization) *regexp.Regexp {
	pattern := `(?:^|\s)(\d{1,2})(?::(\d{1,2})(?::(\d{1,2}))?)?`
	markers := make([]string, 0, len(loc.AMMarkers)+len(loc.PMMarkers))
	for _, m := range append(append([]string{}, loc.AMMarkers...), loc.PMMarkers...) {
		m = strings.TrimSpace(m)
		if m != "" {
			markers = append(markers, regexp.QuoteMeta(strings.ToLower(m)))
		}
	}
	if len(markers) > 0 {
		// Longest marker first so "am" is not truncated to "a".
		sort.Slice(markers, func(i, j int) bool { return len(markers[i]) > len(markers[j]) })
		pattern += `(?:\s*(` + strings.Join(markers, "|") + `))?`
	}
	return regexp.MustCompile(`(?i)` + pattern + `$`)
}

// extractTime splits a trailing time expression off the input. It returns
// the parsed time (nil when the input carries none) and the date-only
// remainder, trimmed.
func extractTime(loc Localization, re *regexp.Regexp, input string) (*TimeOfDay, string, error) {
	m := re.FindStringSubmatchIndex(input)
	if m == nil {
		return nil, strings.TrimSpace(input), nil
	}
	group := func(i int) string {
		if 2*i+1 >= len(m) || m[2*i] < 0 {
			return ""
		}
		return input[m[2*i]:m[2*i+1]]
	}
	raw := strings.TrimSpace(input[m[0]:m[1]])

	hour, _ := strconv.Atoi(group(1))
	minute, second := 0, 0
	if v := group(2); v != "" {
		minute, _ = strconv.Atoi(v)
	}
	if v := group(3); v != "" {
		second, _ = strconv.Atoi(v)
	}
	if minute > 59 || second > 59 {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	marker := strings.ToLower(group(4))
	if marker != "" {
		if hour < 1 || hour > 12 {
			return nil, "", fmt.Errorf("%w: %q", ErrInvalidAmPmHour, raw)
		}
		if containsFold(loc.PMMarkers, marker) {
			if hour < 12 {
				hour += 12
			}
		} else if hour == 12 {
			// 12am is midnight.
			hour = 0
		}
	} else if hour > 23 {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidHour, raw)
	}

	rest := strings.TrimSpace(input[:m[0]])
	return &TimeOfDay{Hour: hour, Minute: minute, Second: second}, rest, nil
}

func containsFold(haystack []string, needle string) bool {
	for _, v := range haystack {
		if strings.EqualFold(strings.TrimSpace(v), needle) {
			return true
		}
	}
	return false
}

func withTime(date time.Time, tod TimeOfDay) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, tod.Hour, tod.Minute, tod.Second, 0, time.UTC)
}
