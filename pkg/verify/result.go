// pkg/verify/result.go
package verify

import (
	"fmt"
	"strings"

	"github.com/creativeyann17/go-gunzip/internal/format"
	"github.com/creativeyann17/go-gunzip/pkg/report"
)

// Result contains verification results for every input file
type Result struct {
	Files []FileInfo

	// One entry per invalid file
	Errors []error
}

// FileInfo describes one verified input file
type FileInfo struct {
	Path           string
	Format         format.Format
	CompressedSize uint64
	Members        []MemberInfo
	Error          error
}

// MemberInfo describes one member of a verified file
type MemberInfo struct {
	Name    string
	Comment string
	Size    uint64
	CRC32   uint32
	BLAKE3  [32]byte
}

// Valid reports whether every member of the file decoded and verified
func (f *FileInfo) Valid() bool {
	return f.Error == nil
}

// DecompressedSize returns the payload size of all members
func (f *FileInfo) DecompressedSize() uint64 {
	var total uint64
	for _, m := range f.Members {
		total += m.Size
	}
	return total
}

// IsValid returns true if every file passed verification
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Success returns true if verification completed without errors
func (r *Result) Success() bool {
	return r.IsValid()
}

// GetFilesTotal returns total files (interface method)
func (r *Result) GetFilesTotal() int {
	return len(r.Files)
}

// GetFilesProcessed returns the number of valid files (interface method)
func (r *Result) GetFilesProcessed() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Valid() {
			n++
		}
	}
	return n
}

// GetMembers returns the number of verified members (interface method)
func (r *Result) GetMembers() int {
	n := 0
	for i := range r.Files {
		n += len(r.Files[i].Members)
	}
	return n
}

// GetErrors returns the error list (interface method)
func (r *Result) GetErrors() []error {
	return r.Errors
}

// GetCompressedSize returns compressed size (interface method)
func (r *Result) GetCompressedSize() uint64 {
	var total uint64
	for i := range r.Files {
		total += r.Files[i].CompressedSize
	}
	return total
}

// GetDecompressedSize returns decompressed size (interface method)
func (r *Result) GetDecompressedSize() uint64 {
	var total uint64
	for i := range r.Files {
		total += r.Files[i].DecompressedSize()
	}
	return total
}

// Listing returns one line per file and one indented line per member
func (r *Result) Listing() string {
	var sb strings.Builder
	for _, f := range r.Files {
		status := "OK"
		if !f.Valid() {
			status = "INVALID"
		}
		fmt.Fprintf(&sb, "%s [%s] %s, %d members\n", f.Path, status, f.Format, len(f.Members))
		for _, m := range f.Members {
			name := m.Name
			if name == "" {
				name = "(no name)"
			}
			fmt.Fprintf(&sb, "  %-30s %10s crc32=%08x blake3=%x\n",
				report.TruncateLeft(name, 30), report.FormatSize(m.Size), m.CRC32, m.BLAKE3[:8])
		}
		if f.Error != nil {
			fmt.Fprintf(&sb, "  error: %v\n", f.Error)
		}
	}
	return sb.String()
}

// Summary returns a human-readable summary of the verification result
func (r *Result) Summary() string {
	return report.FormatSummary(r, report.OperationVerify)
}
