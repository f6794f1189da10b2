// pkg/report/helpers.go
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// OperationType indicates whether files were extracted or only verified
type OperationType string

const (
	OperationGunzip OperationType = "gunzip"
	OperationVerify OperationType = "verify"
)

// ProgressEvent is a generic progress event shared by gunzip and verify.
// For EventMember, Member is the rendered member name (empty when unnamed)
// and Current counts the members of FilePath seen so far.
type ProgressEvent struct {
	Type     EventType
	FilePath string
	Member   string
	Current  int64
	Total    int64
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventFileStart
	EventFileProgress
	EventFileComplete
	EventComplete
	EventError
	EventMember
)

// Result is the common view of gunzip and verify results
type Result interface {
	GetFilesTotal() int
	GetFilesProcessed() int
	GetMembers() int
	GetErrors() []error
	GetCompressedSize() uint64
	GetDecompressedSize() uint64
	Success() bool
}

// ProgressBarCallback creates a progress callback that displays multi-progress bars on stderr.
// Returns the callback function and the progress container (call Wait() after operation)
func ProgressBarCallback() (func(ProgressEvent), *mpb.Progress) {
	return progressBarCallback(os.Stderr)
}

func progressBarCallback(out io.Writer) (func(ProgressEvent), *mpb.Progress) {
	progress := mpb.New(
		mpb.WithOutput(out),
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100),
	)

	var overallBar *mpb.Bar
	var files sync.Map // map[string]*fileBar

	callback := func(event ProgressEvent) {
		switch event.Type {
		case EventStart:
			// Overall bar counts input files and stays at the bottom
			overallBar = progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name("Files", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
				),
				mpb.BarPriority(1000),
			)

		case EventFileStart:
			// An empty input has no members and no bytes to show
			if event.Total == 0 {
				return
			}
			fb := &fileBar{}
			fb.bar = progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name(TruncateLeft(event.FilePath, 30), decor.WC{C: decor.DindentRight | decor.DextraSpace, W: 32}),
				),
				mpb.AppendDecorators(
					decor.CountersKibiByte("% .1f / % .1f", decor.WC{W: 18}),
					decor.Percentage(decor.WC{W: 5}),
					decor.Any(fb.describe, decor.WC{W: 36, C: decor.DindentRight}),
				),
				mpb.BarRemoveOnComplete(),
			)
			files.Store(event.FilePath, fb)

		case EventFileProgress:
			// Bytes of compressed input consumed, not decoded output
			if fb, ok := files.Load(event.FilePath); ok {
				fb.(*fileBar).bar.SetCurrent(event.Current)
			}

		case EventMember:
			if fb, ok := files.Load(event.FilePath); ok {
				fb.(*fileBar).setMember(int(event.Current), event.Member)
			}

		case EventFileComplete:
			if fb, ok := files.LoadAndDelete(event.FilePath); ok {
				bar := fb.(*fileBar).bar
				if event.Total > 0 {
					bar.SetCurrent(event.Total)
				} else {
					bar.Abort(true)
				}
			}
			if overallBar != nil {
				overallBar.Increment()
			}

		case EventError:
			if fb, ok := files.LoadAndDelete(event.FilePath); ok {
				fb.(*fileBar).bar.Abort(true)
			}
			if overallBar != nil {
				overallBar.Increment()
			}

		case EventComplete:
			// A run aborted by an error never fills the overall bar
			if overallBar != nil && !overallBar.Completed() {
				overallBar.Abort(false)
			}
		}
	}

	return callback, progress
}

// fileBar is the bar of one input file and the member it is decoding.
// The member fields are written by the callback and read by the render goroutine.
type fileBar struct {
	bar *mpb.Bar

	mu      sync.Mutex
	members int
	name    string
}

func (f *fileBar) setMember(n int, name string) {
	f.mu.Lock()
	f.members = n
	f.name = name
	f.mu.Unlock()
}

// describe renders the member decorator, e.g. "#2 notes.txt"
func (f *fileBar) describe(decor.Statistics) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.members == 0:
		return ""
	case f.name == "":
		return fmt.Sprintf("#%d (no name)", f.members)
	default:
		return fmt.Sprintf("#%d %s", f.members, TruncateLeft(f.name, 30))
	}
}

// FormatSummary formats a result into a human-readable summary string
func FormatSummary(result Result, operation OperationType) string {
	var sb strings.Builder

	errors := result.GetErrors()
	if len(errors) > 0 {
		fmt.Fprintf(&sb, "Completed with %d errors:\n", len(errors))
		for _, e := range errors {
			fmt.Fprintf(&sb, "  - %v\n", e)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Summary:\n")
	fmt.Fprintf(&sb, "  Files processed:   %d / %d\n", result.GetFilesProcessed(), result.GetFilesTotal())
	fmt.Fprintf(&sb, "  Members:           %d\n", result.GetMembers())
	fmt.Fprintf(&sb, "  Compressed size:   %s\n", FormatSize(result.GetCompressedSize()))
	fmt.Fprintf(&sb, "  Decompressed size: %s\n", FormatSize(result.GetDecompressedSize()))

	if result.GetDecompressedSize() > 0 {
		ratio := float64(result.GetCompressedSize()) / float64(result.GetDecompressedSize()) * 100
		fmt.Fprintf(&sb, "  Ratio:             %.1f%%\n", ratio)
	}

	if operation == OperationVerify {
		sb.WriteString("\nVerify only - no data written.\n")
	}

	return sb.String()
}

// FormatSize formats bytes into human-readable string
func FormatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// TruncateLeft truncates a path from the left to fit maxLen, preserving the filename
func TruncateLeft(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}

	filename := filepath.Base(path)
	if len(filename) >= maxLen-3 {
		return "..." + filename[len(filename)-(maxLen-3):]
	}

	return "..." + path[len(path)-(maxLen-3):]
}
