// pkg/gunzip/errors.go
package gunzip

import (
	"errors"
	"io/fs"
	"os"
)

var (
	// ErrNoInput is returned when no .gz file was selected
	ErrNoInput = errors.New("no input .gz files")

	// ErrFileExists is the cause carried by destination-exists errors
	ErrFileExists = fs.ErrExist
)

// existsError reports that the destination of a named member is already taken.
// Path carries the intended (decoded) member name.
func existsError(name string) error {
	return &os.PathError{Op: "extract", Path: name, Err: ErrFileExists}
}
