package app

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agis/dshort/internal/shortcut"
)

// localeFile is the YAML shape hosts use to supply a custom locale table.
type localeFile struct {
	Year     []string `yaml:"year"`
	Month    []string `yaml:"month"`
	Week     []string `yaml:"week"`
	Day      []string `yaml:"day"`
	Today    []string `yaml:"today"`
	Weekday  []string `yaml:"weekday"`
	AM       []string `yaml:"am"`
	PM       []string `yaml:"pm"`
	Patterns []struct {
		Pattern string `yaml:"pattern"`
		Order   string `yaml:"order"`
	} `yaml:"patterns"`
}

func loadLocaleFile(path string) (shortcut.Localization, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return shortcut.Localization{}, err
	}
	var lf localeFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		return shortcut.Localization{}, fmt.Errorf("parse locale file %s: %w", path, err)
	}
	loc := shortcut.Localization{
		Year:      lf.Year,
		Month:     lf.Month,
		Week:      lf.Week,
		Day:       lf.Day,
		Today:     lf.Today,
		Weekday:   lf.Weekday,
		AMMarkers: lf.AM,
		PMMarkers: lf.PM,
	}
	for i, p := range lf.Patterns {
		expr := strings.TrimSpace(p.Pattern)
		if expr == "" {
			return shortcut.Localization{}, fmt.Errorf("locale file %s: pattern %d is empty", path, i+1)
		}
		if !strings.HasPrefix(expr, "^") {
			// Date patterns only ever match at the head of the remainder.
			expr = "^" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return shortcut.Localization{}, fmt.Errorf("locale file %s: pattern %d: %w", path, i+1, err)
		}
		order := shortcut.DayMonth
		switch strings.ToLower(strings.TrimSpace(p.Order)) {
		case "", "day-month":
		case "month-day":
			order = shortcut.MonthDay
		default:
			return shortcut.Localization{}, fmt.Errorf("locale file %s: pattern %d: unknown order %q", path, i+1, p.Order)
		}
		loc.DatePatterns = append(loc.DatePatterns, shortcut.DatePattern{Regexp: re, Order: order})
	}
	return loc, nil
}
