// pkg/gunzip/progress.go
package gunzip

import (
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/go-gunzip/pkg/report"
)

// ProgressBarCallback creates a progress callback that displays multi-progress bars
// Returns the callback function and the progress container (call Wait() after the run)
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	cb, progress := report.ProgressBarCallback()
	return ProgressCallback(cb), progress
}

// FormatSummary formats a gunzip result into a human-readable summary string
func FormatSummary(result *Result) string {
	return report.FormatSummary(result, report.OperationGunzip)
}
