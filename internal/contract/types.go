package contract

import "time"

const SchemaVersion = "v1"

type ErrorCode string

const (
	ErrGeneric      ErrorCode = "GENERIC_FAILURE"
	ErrInvalidUsage ErrorCode = "INVALID_USAGE"
	ErrParse        ErrorCode = "PARSE_FAILURE"
	ErrStore        ErrorCode = "STORE_FAILURE"
)

type ErrorEnvelope struct {
	SchemaVersion string         `json:"schema_version"`
	Error         ErrorBody      `json:"error"`
	Meta          map[string]any `json:"meta,omitempty"`
}

type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"`
}

type SuccessEnvelope struct {
	SchemaVersion string         `json:"schema_version"`
	Command       string         `json:"command"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Data          any            `json:"data"`
	Meta          map[string]any `json:"meta"`
	Warnings      []string       `json:"warnings"`
}

// Resolution is the outcome of resolving one shortcut.
type Resolution struct {
	Shortcut  string    `json:"shortcut"`
	Locale    string    `json:"locale"`
	Reference time.Time `json:"reference"`
	Resolved  time.Time `json:"resolved"`
	Formatted string    `json:"formatted,omitempty"`
	Relative  string    `json:"relative,omitempty"`
}

// LocaleInfo describes one keyword table for the locales command.
type LocaleInfo struct {
	Tag      string   `json:"tag"`
	Year     []string `json:"year"`
	Month    []string `json:"month"`
	Week     []string `json:"week"`
	Day      []string `json:"day"`
	Today    []string `json:"today"`
	Weekday  []string `json:"weekday"`
	AM       []string `json:"am,omitempty"`
	PM       []string `json:"pm,omitempty"`
	Patterns []string `json:"patterns"`
}

// Occurrence is one expansion of a recurrence rule anchored at a resolved
// shortcut.
type Occurrence struct {
	Index int       `json:"index"`
	At    time.Time `json:"at"`
}
