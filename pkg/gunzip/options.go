// pkg/gunzip/options.go
package gunzip

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Options configures the gunzip run
type Options struct {
	// Input .gz files, processed in order (see Select)
	Files []string

	// Directory named members are extracted into.
	// Default: "" (the working directory)
	OutputDir string

	// Stdout receives status lines and unnamed member payloads
	// Default: os.Stdout
	Stdout io.Writer

	// Verbose adds size and digests to every member line
	Verbose bool

	// Logger receives diagnostic logs
	// Default: no-op
	Logger *zap.Logger
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Stdout: os.Stdout,
		Logger: zap.NewNop(),
	}
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if len(o.Files) == 0 {
		return ErrNoInput
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}
