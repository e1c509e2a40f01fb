package shortcut

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FieldOrder declares how the first two capture groups of a date pattern map
// onto calendar fields.
type FieldOrder int

const (
	DayMonth FieldOrder = iota
	MonthDay
)

func (o FieldOrder) String() string {
	if o == MonthDay {
		return "month-day"
	}
	return "day-month"
}

// DatePattern is an absolute-date matcher tried against the head of the
// date remainder. The pattern must capture two numeric groups (interpreted
// per Order) and may capture a third 2- or 4-digit year group.
type DatePattern struct {
	Regexp *regexp.Regexp
	Order  FieldOrder
}

// Localization is the keyword table for one language. It is pure data:
// adding a language means registering a new table, not new code.
//
// Keywords are matched case-insensitively and must not be purely numeric.
// A keyword registered in two categories keeps its first registration; the
// reverse map is built in the order today, year, month, week, day, weekday.
type Localization struct {
	Year    []string
	Month   []string
	Week    []string
	Day     []string
	Today   []string
	Weekday []string

	// AM/PM markers for 12-hour time suffixes. Empty for 24-hour locales.
	AMMarkers []string
	PMMarkers []string

	DatePatterns []DatePattern
}

func dmy(expr string) DatePattern {
	return DatePattern{Regexp: regexp.MustCompile(expr), Order: DayMonth}
}

func mdy(expr string) DatePattern {
	return DatePattern{Regexp: regexp.MustCompile(expr), Order: MonthDay}
}

var builtinLocales = map[string]Localization{
	"en": {
		Year:      []string{"y", "yr", "year", "years"},
		Month:     []string{"m", "month", "months"},
		Week:      []string{"w", "week", "weeks"},
		Day:       []string{"d", "day", "days"},
		Today:     []string{"t", "tod", "today"},
		Weekday:   []string{"wd", "weekday", "weekdays"},
		AMMarkers: []string{"am", "a"},
		PMMarkers: []string{"pm", "p"},
		DatePatterns: []DatePattern{
			mdy(`^(\d{1,2})/(\d{1,2})/(\d{4})`),
			mdy(`^(\d{1,2})/(\d{1,2})/(\d{1,2})`),
			mdy(`^(\d{1,2})/(\d{1,2})`),
		},
	},
	"de": {
		Year:    []string{"j", "jahr", "jahre"},
		Month:   []string{"m", "monat", "monate"},
		Week:    []string{"w", "woche", "wochen"},
		Day:     []string{"t", "tag", "tage"},
		Today:   []string{"h", "heute"},
		Weekday: []string{"wt", "wochentag", "arbeitstag"},
		DatePatterns: []DatePattern{
			dmy(`^(\d{1,2})\.(\d{1,2})\.(\d{4})`),
			dmy(`^(\d{1,2})\.(\d{1,2})\.(\d{1,2})`),
			dmy(`^(\d{1,2})\.(\d{1,2})`),
		},
	},
	"fr": {
		Year:    []string{"an", "annee", "année", "ans"},
		Month:   []string{"m", "mois"},
		Week:    []string{"s", "sem", "semaine", "semaines"},
		Day:     []string{"j", "jour", "jours"},
		Today:   []string{"auj", "aujourdhui", "aujourd'hui"},
		Weekday: []string{"jo", "ouvrable"},
		DatePatterns: []DatePattern{
			dmy(`^(\d{1,2})/(\d{1,2})/(\d{4})`),
			dmy(`^(\d{1,2})/(\d{1,2})/(\d{1,2})`),
			dmy(`^(\d{1,2})/(\d{1,2})`),
		},
	},
	"tr": {
		Year:    []string{"y", "yil", "yıl"},
		Month:   []string{"a", "ay"},
		Week:    []string{"hf", "hafta"},
		Day:     []string{"g", "gun", "gün"},
		Today:   []string{"b", "bugun", "bugün"},
		Weekday: []string{"ig", "isgunu", "işgünü"},
		DatePatterns: []DatePattern{
			dmy(`^(\d{1,2})\.(\d{1,2})\.(\d{4})`),
			dmy(`^(\d{1,2})\.(\d{1,2})\.(\d{1,2})`),
			dmy(`^(\d{1,2})\.(\d{1,2})`),
		},
	},
}

// ResolveLocale returns the built-in Localization for a tag.
func ResolveLocale(tag string) (Localization, error) {
	loc, ok := builtinLocales[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return Localization{}, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}
	return loc, nil
}

// LocaleTags lists the built-in locale tags in sorted order.
func LocaleTags() []string {
	tags := make([]string, 0, len(builtinLocales))
	for tag := range builtinLocales {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

type unitKind int

const (
	unitToday unitKind = iota
	unitYear
	unitMonth
	unitWeek
	unitDay
	unitWeekday
)

func (k unitKind) String() string {
	switch k {
	case unitToday:
		return "today"
	case unitYear:
		return "year"
	case unitMonth:
		return "month"
	case unitWeek:
		return "week"
	case unitDay:
		return "day"
	case unitWeekday:
		return "weekday"
	}
	return "unknown"
}

// buildUnitMap flattens every keyword list into a single reverse lookup.
// Categories are registered in a fixed order and the first registration of a
// keyword wins, so a collision across categories resolves deterministically.
func buildUnitMap(loc Localization) map[string]unitKind {
	m := make(map[string]unitKind)
	register := func(keywords []string, kind unitKind) {
		for _, kw := range keywords {
			key := strings.ToLower(strings.TrimSpace(kw))
			if key == "" {
				continue
			}
			if _, taken := m[key]; taken {
				continue
			}
			m[key] = kind
		}
	}
	register(loc.Today, unitToday)
	register(loc.Year, unitYear)
	register(loc.Month, unitMonth)
	register(loc.Week, unitWeek)
	register(loc.Day, unitDay)
	register(loc.Weekday, unitWeekday)
	return m
}

// todayKeywords returns the locale's today aliases lowercased and sorted
// longest-first, so a longer alias is never shadowed by a shorter prefix.
func todayKeywords(loc Localization) []string {
	out := make([]string, 0, len(loc.Today))
	for _, kw := range loc.Today {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key != "" {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
