// internal/member/decoder.go
package member

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"
)

// Member is one gzip member of a stream. It is only valid until the next
// call to Decoder.Next.
type Member struct {
	// Raw embedded file name (FNAME), empty when absent
	Name []byte

	// Raw embedded comment (FCOMMENT), empty when absent
	Comment []byte

	ModTime time.Time
	OS      byte

	dec      *Decoder
	seq      int
	crc      uint32
	size     uint64
	digest   *blake3.Hasher
	consumed bool
	done     bool
}

// Read reads decompressed payload bytes. It returns io.EOF once the member
// trailer has been verified.
func (m *Member) Read(p []byte) (int, error) {
	if m.dec.seq != m.seq {
		return 0, ErrStaleMember
	}
	if m.done {
		return 0, io.EOF
	}
	m.consumed = true

	n, err := m.dec.zr.Read(p)
	if n > 0 {
		m.crc = m.dec.table.Update(m.crc, p[:n])
		m.size += uint64(n)
		m.digest.Write(p[:n])
	}
	if err == io.EOF {
		m.done = true
	} else if err != nil {
		m.dec.err = err
	}
	return n, err
}

// ReadAll reads the whole payload into memory. It can only be called on a
// member whose payload has not been read yet.
func (m *Member) ReadAll() ([]byte, error) {
	if m.consumed {
		return nil, ErrPayloadConsumed
	}
	return io.ReadAll(m)
}

// CRC32 returns the checksum of the payload bytes read so far
func (m *Member) CRC32() uint32 {
	return m.crc
}

// Size returns the number of payload bytes read so far
func (m *Member) Size() uint64 {
	return m.size
}

// Digest returns the BLAKE3-256 hash of the payload bytes read so far
func (m *Member) Digest() [32]byte {
	var sum [32]byte
	copy(sum[:], m.digest.Sum(nil))
	return sum
}

// Done reports whether the whole payload has been read and verified
func (m *Member) Done() bool {
	return m.done
}

// Decoder walks the members of a gzip stream one at a time
type Decoder struct {
	br    *bufio.Reader
	zr    *gzip.Reader
	table *Table
	cur   *Member
	seq   int
	err   error
}

// NewDecoder creates a member decoder reading from r. The table is shared,
// not copied.
func NewDecoder(r io.Reader, table *Table) *Decoder {
	return &Decoder{
		br:    bufio.NewReader(r),
		table: table,
	}
}

// Next returns the next member of the stream, or io.EOF when the stream holds
// no further member. Any payload left unread in the previous member is drained
// (and verified) first. Once Next has failed it keeps returning the same error.
func (d *Decoder) Next() (*Member, error) {
	if d.err != nil {
		return nil, d.err
	}

	if d.cur != nil && !d.cur.done {
		if _, err := io.Copy(io.Discard, d.cur); err != nil {
			d.err = fmt.Errorf("drain member: %w", err)
			return nil, d.err
		}
	}
	d.seq++
	d.cur = nil

	if d.zr == nil {
		zr, err := gzip.NewReader(d.br)
		if err != nil {
			d.err = err
			return nil, err
		}
		d.zr = zr
	} else if err := d.zr.Reset(d.br); err != nil {
		d.err = err
		return nil, err
	}
	// Reset re-enables multistream; members must stop at their own trailer
	d.zr.Multistream(false)

	d.cur = &Member{
		Name:    headerBytes(d.zr.Name),
		Comment: headerBytes(d.zr.Comment),
		ModTime: d.zr.ModTime,
		OS:      d.zr.OS,
		dec:     d,
		seq:     d.seq,
		digest:  blake3.New(),
	}
	return d.cur, nil
}

// headerBytes undoes the Latin-1 to UTF-8 conversion gzip.Reader applies to
// FNAME and FCOMMENT: every header byte b was decoded as rune(b).
func headerBytes(s string) []byte {
	if s == "" {
		return nil
	}
	raw := make([]byte, 0, len(s))
	for _, r := range s {
		raw = append(raw, byte(r))
	}
	return raw
}

// Close releases the decompressor. It does not close the underlying reader.
func (d *Decoder) Close() error {
	d.seq++
	d.cur = nil
	if d.err == nil {
		d.err = ErrDecoderClosed
	}
	if d.zr == nil {
		return nil
	}
	return d.zr.Close()
}
