// pkg/verify/options.go
package verify

import "go.uber.org/zap"

// Options configures the verify operation
type Options struct {
	// Files to verify, in order
	Files []string

	// Logger receives diagnostic logs
	// Default: no-op
	Logger *zap.Logger
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if len(o.Files) == 0 {
		return ErrInputRequired
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}
