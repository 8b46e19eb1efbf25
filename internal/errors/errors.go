// Package errors provides the error handling primitives used throughout
// deltasync. It re-exports the relevant parts of the standard library
// errors package so that callers only need a single import, and adds a
// "fatal" error kind for programmer errors that should abort the process
// (invalid configuration, calling an API after it has been consumed).
package errors

import "errors"

// Func aliases to the standard library, so callers can import just this
// package for all error handling needs.
var (
	New    = errors.New
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)
