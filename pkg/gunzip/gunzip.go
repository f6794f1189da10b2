// pkg/gunzip/gunzip.go
package gunzip

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/creativeyann17/go-gunzip/internal/member"
	"github.com/creativeyann17/go-gunzip/pkg/report"
)

// Delimiter brackets the payload of unnamed members on Stdout
const Delimiter = "================"

// ProgressCallback is called for various progress events
type ProgressCallback func(event report.ProgressEvent)

// Gunzip extracts every member of every file in opts.Files, in order.
// The first error aborts the whole run; output already written is kept.
func Gunzip(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{FilesTotal: len(opts.Files)}
	table := member.NewTable()

	if progressCb != nil {
		progressCb(report.ProgressEvent{
			Type:  report.EventStart,
			Total: int64(len(opts.Files)),
		})
		defer progressCb(report.ProgressEvent{
			Type:  report.EventComplete,
			Total: int64(len(opts.Files)),
		})
	}

	for _, path := range opts.Files {
		if err := gunzipFile(path, table, opts, progressCb, result); err != nil {
			opts.Logger.Debug("gunzip aborted", zap.String("file", path), zap.Error(err))
			if progressCb != nil {
				progressCb(report.ProgressEvent{Type: report.EventError, FilePath: path})
			}
			return result, err
		}
		result.FilesProcessed++
	}

	return result, nil
}

// gunzipFile walks the members of one input file. The file and its decoder
// are released on every return path.
func gunzipFile(path string, table *member.Table, opts *Options, progressCb ProgressCallback, result *Result) error {
	fmt.Fprintf(opts.Stdout, "Reading file %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	if progressCb != nil {
		progressCb(report.ProgressEvent{
			Type:     report.EventFileStart,
			FilePath: path,
			Total:    size,
		})
	}

	var read int64
	src := &report.ProgressReader{
		Reader: f,
		OnRead: func(n int) {
			read += int64(n)
			result.CompressedSize += uint64(n)
			if progressCb != nil {
				progressCb(report.ProgressEvent{
					Type:     report.EventFileProgress,
					FilePath: path,
					Current:  read,
					Total:    size,
				})
			}
		},
	}

	dec := member.NewDecoder(src, table)
	defer dec.Close()

	opts.Logger.Debug("file opened", zap.String("file", path), zap.Int64("size", size))

	var members int64
	for {
		m, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		members++
		if progressCb != nil {
			progressCb(report.ProgressEvent{
				Type:     report.EventMember,
				FilePath: path,
				Member:   member.Text(m.Name),
				Current:  members,
			})
		}

		if err := extractMember(m, opts, result); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	if progressCb != nil {
		progressCb(report.ProgressEvent{
			Type:     report.EventFileComplete,
			FilePath: path,
			Current:  size,
			Total:    size,
		})
	}

	opts.Logger.Debug("file done", zap.String("file", path), zap.Int64("read", read), zap.Int64("members", members))
	return nil
}

// extractMember reports a member, reads its payload and either writes it to
// the embedded name or dumps it between delimiter lines.
func extractMember(m *member.Member, opts *Options, result *Result) error {
	if len(m.Name) > 0 {
		fmt.Fprintf(opts.Stdout, "Member: %s\n", member.Text(m.Name))
	} else {
		fmt.Fprintln(opts.Stdout, "Member: no name")
	}
	if len(m.Comment) > 0 {
		fmt.Fprintf(opts.Stdout, "Comment: %s\n", member.Text(m.Comment))
	}

	payload, err := m.ReadAll()
	if err != nil {
		return err
	}

	result.Members++
	result.DecompressedSize += uint64(len(payload))

	if opts.Verbose {
		fmt.Fprintf(opts.Stdout, "  size=%d crc32=%08x blake3=%x\n", m.Size(), m.CRC32(), m.Digest())
	}
	opts.Logger.Debug("member decoded",
		zap.ByteString("name", m.Name),
		zap.Int("size", len(payload)),
		zap.Uint32("crc32", m.CRC32()),
	)

	if len(m.Name) == 0 {
		fmt.Fprintf(opts.Stdout, "%s\n%s%s\n", Delimiter, payload, Delimiter)
		return nil
	}

	dest, err := writeMember(m.Name, opts.OutputDir, payload)
	if err != nil {
		return err
	}

	result.MembersExtracted++
	result.Extracted = append(result.Extracted, dest)
	opts.Logger.Debug("member extracted", zap.String("path", dest))
	return nil
}

// writeMember creates a new file for a named member. Existing files are
// never replaced.
func writeMember(name []byte, outputDir string, payload []byte) (string, error) {
	dest := string(name)
	if outputDir != "" {
		dest = filepath.Join(outputDir, dest)
	}

	if _, err := os.Stat(dest); err == nil {
		return dest, existsError(member.Text(name))
	}

	// O_EXCL closes the window between the check above and the create
	outFile, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return dest, existsError(member.Text(name))
		}
		return dest, err
	}

	_, err = outFile.Write(payload)
	if cerr := outFile.Close(); err == nil {
		err = cerr
	}
	return dest, err
}
