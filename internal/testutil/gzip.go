// Package testutil builds gzip fixtures for tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

// Member describes one gzip member of a fixture
type Member struct {
	Name    string
	Comment string
	Data    []byte
}

// Gzip returns the concatenation of one gzip member per entry
func Gzip(t testing.TB, members ...Member) []byte {
	t.Helper()

	var buf bytes.Buffer
	for _, m := range members {
		zw := gzip.NewWriter(&buf)
		zw.Name = m.Name
		zw.Comment = m.Comment
		zw.ModTime = time.Date(1977, time.May, 25, 0, 0, 0, 0, time.UTC)

		_, err := zw.Write(m.Data)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
	}
	return buf.Bytes()
}

// WriteFile writes raw bytes to dir/name and returns the path
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// WriteGzip writes a gzip fixture to dir/name and returns the path
func WriteGzip(t testing.TB, dir, name string, members ...Member) string {
	t.Helper()
	return WriteFile(t, dir, name, Gzip(t, members...))
}

// CorruptChecksum flips a bit in the CRC-32 of the last member's trailer
func CorruptChecksum(data []byte) []byte {
	out := bytes.Clone(data)
	out[len(out)-8] ^= 0xff
	return out
}
