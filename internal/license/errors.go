package license

import "errors"

var (
	// ErrConfiguration reports a missing or unusable license source.
	ErrConfiguration = errors.New("license configuration error")
	// ErrIO reports a failure of the underlying license stream.
	ErrIO = errors.New("license io error")
)
