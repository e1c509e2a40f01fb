package app

import (
	"errors"
	"fmt"

	"github.com/agis/dshort/internal/contract"
	"github.com/agis/dshort/internal/shortcut"
)

// AppError carries the process exit code for a failure. Printed marks
// errors already rendered by a command so the top level does not repeat
// them.
type AppError struct {
	Code    int
	Err     error
	Printed bool
}

func (e AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return AppError{Code: code, Err: err}
}

func WrapPrinted(code int, err error) error {
	if err == nil {
		return nil
	}
	return AppError{Code: code, Err: err, Printed: true}
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e AppError
	if errors.As(err, &e) {
		return e.Code
	}
	return 1
}

// errorCodeFor maps engine sentinels onto the output contract's error codes.
// Construction-time problems are usage errors; anything raised while
// resolving a shortcut is a parse failure.
func errorCodeFor(err error) contract.ErrorCode {
	switch {
	case errors.Is(err, shortcut.ErrUnknownLocale),
		errors.Is(err, shortcut.ErrInvalidDefaultTimeFormat),
		errors.Is(err, shortcut.ErrInvalidDefaultTimeValue):
		return contract.ErrInvalidUsage
	case errors.Is(err, shortcut.ErrEmptyShortcut),
		errors.Is(err, shortcut.ErrInvalidTimeFormat),
		errors.Is(err, shortcut.ErrInvalidHour),
		errors.Is(err, shortcut.ErrInvalidAmPmHour),
		errors.Is(err, shortcut.ErrInvalidPartFormat),
		errors.Is(err, shortcut.ErrUnknownUnit),
		errors.Is(err, shortcut.ErrWeekdayNotFound):
		return contract.ErrParse
	}
	return contract.ErrGeneric
}
