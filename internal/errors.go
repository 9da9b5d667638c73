package internal

import "errors"

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNoMatch       = errors.New("no matching assets")
	ErrNoProvider    = errors.New("no provider configured")
)

// LogFunc is the injected observability side channel. Core operations never
// print; they report through this callback so state transitions stay
// independently testable.
type LogFunc func(format string, args ...any)

func nopLog(string, ...any) {}
