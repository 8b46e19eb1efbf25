package errors

import "fmt"

// fatalError is an error that should cause the process to terminate with a
// clear message rather than be retried or recovered from, e.g. invalid
// configuration detected at construction time.
type fatalError struct {
	msg string
}

func (e *fatalError) Error() string {
	return "Fatal: " + e.msg
}

// Fatal constructs an error that IsFatal will report as fatal.
func Fatal(msg string) error {
	return &fatalError{msg: msg}
}

// Fatalf constructs a fatal error with a formatted message.
func Fatalf(format string, args ...interface{}) error {
	return &fatalError{msg: fmt.Sprintf(format, args...)}
}

// IsFatal returns true if err (or something it wraps) was constructed with
// Fatal or Fatalf.
func IsFatal(err error) bool {
	var fe *fatalError
	return As(err, &fe)
}
