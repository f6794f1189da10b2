// pkg/verify/errors.go
package verify

import "errors"

var (
	// ErrInputRequired is returned when no input file is given
	ErrInputRequired = errors.New("at least one input file is required")

	// ErrNotGzip is returned when a file does not start with a gzip member
	ErrNotGzip = errors.New("not a gzip file")
)
