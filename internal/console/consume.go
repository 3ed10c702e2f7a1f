package console

import "errors"

// Logger is a failure value that can describe itself as a log entry.
// Collaborators implement it on their error types so that diagnostic
// detail travels through the Console rather than the return channel.
type Logger interface {
	Log() Log
}

// Consume converts a fallible result into an opaque ok/failed signal. On
// failure the error is appended to the Console as a log entry and ok is
// false; the call site never receives the failure payload itself. Errors
// that do not implement Logger are appended as a literal-titled Error
// entry so nothing is silently lost.
func Consume[T any](cons *Console, v T, err error) (T, bool) {
	if err == nil {
		return v, true
	}

	var logger Logger
	if errors.As(err, &logger) {
		cons.Append(logger.Log())
	} else {
		cons.Append(NewLog(KindError, Literal(err.Error())))
	}

	var zero T
	return zero, false
}
