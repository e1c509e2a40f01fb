package shortcut

import "errors"

// Sentinel errors returned by the parser. Callers match them with errors.Is;
// the wrapped message always quotes the offending input fragment.
var (
	ErrEmptyShortcut            = errors.New("empty shortcut")
	ErrUnknownLocale            = errors.New("unknown locale")
	ErrInvalidDefaultTimeFormat = errors.New("invalid default time format")
	ErrInvalidDefaultTimeValue  = errors.New("invalid default time value")
	ErrInvalidTimeFormat        = errors.New("invalid time")
	ErrInvalidHour              = errors.New("invalid hour")
	ErrInvalidAmPmHour          = errors.New("invalid 12-hour clock hour")
	ErrInvalidPartFormat        = errors.New("invalid part format")
	ErrUnknownUnit              = errors.New("unknown unit")
	ErrWeekdayNotFound          = errors.New("weekday not found")
)
