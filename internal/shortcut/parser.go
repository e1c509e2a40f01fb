// Package shortcut resolves short, human-typed date shortcuts like "t+3d.",
// "23.03 + 2woche" or "5:30pm" into concrete timestamps relative to a fixed
// reference instant. All calendar arithmetic happens in UTC; the locale only
// drives keywords and date patterns, never the epoch.
package shortcut

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Parser resolves shortcuts against an immutable configuration fixed at
// construction. It holds no per-call state and is safe for concurrent use.
type Parser struct {
	loc       Localization
	from      time.Time
	defTime   *TimeOfDay
	units     map[string]unitKind
	timeRe    *regexp.Regexp
	todayKeys []string
}

type options struct {
	from         time.Time
	localeTag    string
	localization *Localization
	defaultTime  string
}

// Option configures a Parser at construction.
type Option func(*options)

// WithReference fixes the reference instant. Defaults to time.Now.
func WithReference(t time.Time) Option {
	return func(o *options) { o.from = t }
}

// WithLocale selects a built-in locale table by tag.
func WithLocale(tag string) Option {
	return func(o *options) { o.localeTag = tag }
}

// WithLocalization supplies a caller-built locale table. It passes through
// unvalidated and takes precedence over WithLocale.
func WithLocalization(loc Localization) Option {
	return func(o *options) { o.localization = &loc }
}

// WithDefaultTime sets the fallback time of day, in HH[:MM[:SS]] form,
// applied when a shortcut carries no explicit time.
func WithDefaultTime(s string) Option {
	return func(o *options) { o.defaultTime = s }
}

// New builds a Parser. The reverse keyword map and the trailing-time matcher
// are compiled once here, so Parse itself only does constant-time lookups.
func New(opts ...Option) (*Parser, error) {
	o := options{localeTag: "en"}
	for _, opt := range opts {
		opt(&o)
	}
	loc := Localization{}
	if o.localization != nil {
		loc = *o.localization
	} else {
		resolved, err := ResolveLocale(o.localeTag)
		if err != nil {
			return nil, err
		}
		loc = resolved
	}
	p := &Parser{
		loc:       loc,
		from:      o.from,
		units:     buildUnitMap(loc),
		timeRe:    compileTimeRegexp(loc),
		todayKeys: todayKeywords(loc),
	}
	if p.from.IsZero() {
		p.from = time.Now()
	}
	p.from = p.from.UTC()
	if strings.TrimSpace(o.defaultTime) != "" {
		tod, err := ParseTimeOfDay(strings.TrimSpace(o.defaultTime))
		if err != nil {
			return nil, err
		}
		p.defTime = &tod
	}
	return p, nil
}

// Reference returns the parser's reference instant.
func (p *Parser) Reference() time.Time { return p.from }

// Parse resolves one shortcut to a timestamp. The pipeline is fixed:
// trailing time extraction, today-keyword consumption, absolute-date match,
// relative adjustments, optional closest-workday shift, time application.
func (p *Parser) Parse(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: %q", ErrEmptyShortcut, input)
	}

	tod, rest, err := extractTime(p.loc, p.timeRe, s)
	if err != nil {
		return time.Time{}, err
	}

	var date time.Time
	if rest == "" {
		// The whole input was a time expression. Keep the reference date
		// and clock; the extracted or default time overwrites it below.
		date = p.from
	} else {
		y, m, d := p.from.Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

		rest = p.consumeToday(rest)
		if abs, remainder, ok := matchAbsoluteDate(p.loc, p.from, rest); ok {
			date = abs
			rest = remainder
		}
		rest = strings.TrimSpace(rest)

		workday := false
		if strings.HasSuffix(rest, ".") {
			workday = true
			rest = strings.TrimSpace(strings.TrimSuffix(rest, "."))
		}
		if rest != "" {
			date, err = p.applyRelativeParts(date, rest)
			if err != nil {
				return time.Time{}, err
			}
		}
		if workday {
			date = ClosestWorkday(date)
		}
	}

	switch {
	case tod != nil:
		date = withTime(date, *tod)
	case p.defTime != nil:
		date = withTime(date, *p.defTime)
	}
	return date, nil
}

// consumeToday strips at most one leading today keyword, trying the longest
// alias first so "today" is never truncated to "t". Later occurrences are
// handled as no-op relative parts.
func (p *Parser) consumeToday(s string) string {
	for _, kw := range p.todayKeys {
		if len(s) >= len(kw) && strings.EqualFold(s[:len(kw)], kw) {
			return strings.TrimLeft(s[len(kw):], " \t")
		}
	}
	return s
}
