package shortcut

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// partRe matches one relative part: optional sign, optional magnitude
// (default 1), unit keyword letters.
var partRe = regexp.MustCompile(`^([+-]?)(\d*)(\pL+)$`)

// splitParts tokenizes the relative remainder. A sign always starts a new
// token, and a lone sign is glued onto the token that follows it, so "+1d",
// "+ 1d" and " + 1d" all yield the single token "+1d".
func splitParts(s string) ([]string, error) {
	var b strings.Builder
	for _, r := range s {
		if r == '+' || r == '-' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	fields := strings.Fields(b.String())
	out := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if f == "+" || f == "-" {
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidPartFormat, f)
			}
			out = append(out, f+fields[i+1])
			i++
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// applyRelativeParts applies the remainder's signed unit adjustments to the
// running date, strictly left to right.
func (p *Parser) applyRelativeParts(date time.Time, s string) (time.Time, error) {
	tokens, err := splitParts(s)
	if err != nil {
		return time.Time{}, err
	}
	for _, tok := range tokens {
		m := partRe.FindStringSubmatch(tok)
		if m == nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPartFormat, tok)
		}
		kind, ok := p.units[strings.ToLower(m[3])]
		if !ok {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownUnit, m[3])
		}
		if kind == unitToday {
			// Redundant today keywords are tolerated as no-ops.
			continue
		}
		magnitude := 1
		if m[2] != "" {
			magnitude, _ = strconv.Atoi(m[2])
		}
		negative := m[1] == "-"
		amount := magnitude
		if negative {
			amount = -magnitude
		}
		switch kind {
		case unitYear:
			date = date.AddDate(amount, 0, 0)
		case unitMonth:
			date = addMonthsClamped(date, amount)
		case unitWeek:
			date = date.AddDate(0, 0, amount*7)
		case unitDay:
			date = date.AddDate(0, 0, amount)
		case unitWeekday:
			date, err = nthWorkdayOfMonth(date, magnitude, negative)
			if err != nil {
				return time.Time{}, err
			}
		}
	}
	return date, nil
}

// addMonthsClamped shifts the month field and clamps the day-of-month to the
// target month's length, so Jan 31 +1m is Feb 29 in a leap year and Feb 28
// otherwise.
func addMonthsClamped(date time.Time, amount int) time.Time {
	y, m, d := date.Date()
	h, min, sec := date.Clock()
	total := y*12 + int(m) - 1 + amount
	ty, tm := total/12, time.Month(total%12+1)
	if total < 0 && total%12 != 0 {
		ty--
		tm = time.Month(total%12 + 13)
	}
	if max := daysInMonth(ty, tm); d > max {
		d = max
	}
	return time.Date(ty, tm, d, h, min, sec, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
