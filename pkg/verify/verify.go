// pkg/verify/verify.go
package verify

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/creativeyann17/go-gunzip/internal/format"
	"github.com/creativeyann17/go-gunzip/internal/member"
	"github.com/creativeyann17/go-gunzip/pkg/report"
)

// ProgressCallback is called for progress updates during verification
type ProgressCallback func(event report.ProgressEvent)

// Verify decodes every member of every file without writing anything.
// Unlike gunzip, a bad file does not stop the others from being checked.
func Verify(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}
	table := member.NewTable()

	if progressCb != nil {
		progressCb(report.ProgressEvent{
			Type:  report.EventStart,
			Total: int64(len(opts.Files)),
		})
	}

	for _, path := range opts.Files {
		info := verifyFile(path, table, progressCb)
		if info.Error != nil {
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, info.Error))
			opts.Logger.Debug("verify failed", zap.String("file", path), zap.Error(info.Error))
			if progressCb != nil {
				progressCb(report.ProgressEvent{Type: report.EventError, FilePath: path})
			}
		} else if progressCb != nil {
			progressCb(report.ProgressEvent{
				Type:     report.EventFileComplete,
				FilePath: path,
				Current:  int64(info.CompressedSize),
				Total:    int64(info.CompressedSize),
			})
		}
		result.Files = append(result.Files, info)
	}

	if progressCb != nil {
		progressCb(report.ProgressEvent{
			Type:    report.EventComplete,
			Current: int64(result.GetFilesProcessed()),
			Total:   int64(len(opts.Files)),
		})
	}

	return result, nil
}

func verifyFile(path string, table *member.Table, progressCb ProgressCallback) FileInfo {
	info := FileInfo{Path: path}

	f, err := os.Open(path)
	if err != nil {
		info.Error = err
		return info
	}
	defer f.Close()

	// Label the input from its magic, then rewind
	magic := make([]byte, len(format.GzipMagic))
	n, _ := io.ReadFull(f, magic)
	info.Format = format.DetectFormat(magic[:n])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		info.Error = fmt.Errorf("seek to start: %w", err)
		return info
	}
	if n > 0 && info.Format != format.FormatGzip {
		info.Error = ErrNotGzip
		return info
	}

	if progressCb != nil {
		if stat, err := f.Stat(); err == nil {
			progressCb(report.ProgressEvent{
				Type:     report.EventFileStart,
				FilePath: path,
				Total:    stat.Size(),
			})
		}
	}

	counter := &report.CountingReader{Reader: f}
	src := &report.ProgressReader{
		Reader: counter,
		OnRead: func(int) {
			if progressCb != nil {
				progressCb(report.ProgressEvent{
					Type:     report.EventFileProgress,
					FilePath: path,
					Current:  counter.Count,
				})
			}
		},
	}

	dec := member.NewDecoder(src, table)
	defer dec.Close()

	for {
		m, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			info.Error = err
			break
		}

		if progressCb != nil {
			progressCb(report.ProgressEvent{
				Type:     report.EventMember,
				FilePath: path,
				Member:   member.Text(m.Name),
				Current:  int64(len(info.Members) + 1),
			})
		}

		// Stream the payload; only the digests are kept
		if _, err := io.Copy(io.Discard, m); err != nil {
			info.Error = err
			break
		}

		info.Members = append(info.Members, MemberInfo{
			Name:    member.Text(m.Name),
			Comment: member.Text(m.Comment),
			Size:    m.Size(),
			CRC32:   m.CRC32(),
			BLAKE3:  m.Digest(),
		})
	}

	info.CompressedSize = uint64(counter.Count)
	return info
}
