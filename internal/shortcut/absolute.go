package shortcut

import (
	"strconv"
	"strings"
	"time"
)

// matchAbsoluteDate tries the locale's date patterns, in order, against the
// head of the date remainder. The first match wins. A missing year defaults
// to the reference year; a 1- or 2-digit year means 2000+value.
func matchAbsoluteDate(loc Localization, ref time.Time, s string) (time.Time, string, bool) {
	for _, pat := range loc.DatePatterns {
		m := pat.Regexp.FindStringSubmatchIndex(s)
		if m == nil || m[0] != 0 {
			continue
		}
		group := func(i int) string {
			if 2*i+1 >= len(m) || m[2*i] < 0 {
				return ""
			}
			return s[m[2*i]:m[2*i+1]]
		}
		first, _ := strconv.Atoi(group(1))
		second, _ := strconv.Atoi(group(2))
		day, month := first, second
		if pat.Order == MonthDay {
			day, month = second, first
		}
		year := ref.Year()
		if y := group(3); y != "" {
			n, _ := strconv.Atoi(y)
			if len(y) <= 2 {
				n += 2000
			}
			year = n
		}
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		rest := strings.TrimLeft(s[m[1]:], " \t")
		return date, rest, true
	}
	return time.Time{}, s, false
}
