// internal/member/table.go
package member

import "hash/crc32"

// Table is the CRC-32 (IEEE) lookup table shared by every decoder of a run.
// It is never modified after NewTable returns.
//
// gzip.Reader checks each member trailer with its own CRC state; the table
// only feeds Member.CRC32, the checksum reported by --verbose and verify.
type Table struct {
	t *crc32.Table
}

// NewTable builds the checksum table
func NewTable() *Table {
	return &Table{t: crc32.MakeTable(crc32.IEEE)}
}

// Update returns the result of adding p to crc
func (t *Table) Update(crc uint32, p []byte) uint32 {
	return crc32.Update(crc, t.t, p)
}

// Checksum returns the CRC-32 of p
func (t *Table) Checksum(p []byte) uint32 {
	return crc32.Checksum(p, t.t)
}
