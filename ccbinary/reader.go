// Package ccbinary implements the little-endian byte-cursor reader and
// writer shared by every codec in this module (DAT, C2M, TWS). It plays the
// role repparser's sliceReader plays for SC:BW replays: a minimal cursor
// over a byte slice, generalized here with NUL-terminated and fixed-width
// Windows-1252 text helpers the domain codecs need.
package ccbinary

import (
	"encoding/binary"

	"github.com/ChipMcCallahan/CCTools/cctoolserr"
	"github.com/ChipMcCallahan/CCTools/internal/cp1252"
)

// Reader aids reading little-endian values from a byte slice. It panics
// with a cctoolserr sentinel on any out-of-bounds access; callers at a
// package boundary recover and translate the panic into a returned error,
// the same discipline repparser.parseProtected applies around sliceReader.
type Reader struct {
	b   []byte
	pos int
}

// NewReader wraps b for reading starting at position 0.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Position returns the index of the next byte to be read.
func (r *Reader) Position() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.b) - r.pos }

// Seek repositions the cursor to an absolute offset.
func (r *Reader) Seek(pos int) {
	if pos < 0 || pos > len(r.b) {
		panic(cctoolserr.ErrUnexpectedEOF)
	}
	r.pos = pos
}

// Bytes returns the full underlying buffer.
func (r *Reader) Bytes() []byte { return r.b }

func (r *Reader) need(n int) {
	if r.pos+n > len(r.b) || n < 0 {
		panic(cctoolserr.ErrUnexpectedEOF)
	}
}

// U8 returns the next byte.
func (r *Reader) U8() (v byte) {
	r.need(1)
	v, r.pos = r.b[r.pos], r.pos+1
	return
}

// U16 returns the next 2 bytes as a little-endian uint16.
func (r *Reader) U16() (v uint16) {
	r.need(2)
	v, r.pos = binary.LittleEndian.Uint16(r.b[r.pos:]), r.pos+2
	return
}

// U32 returns the next 4 bytes as a little-endian uint32.
func (r *Reader) U32() (v uint32) {
	r.need(4)
	v, r.pos = binary.LittleEndian.Uint32(r.b[r.pos:]), r.pos+4
	return
}

// I32 returns the next 4 bytes as a little-endian int32.
func (r *Reader) I32() int32 { return int32(r.U32()) }

// Slice returns the next n bytes as a fresh, independent slice.
func (r *Reader) Slice(n int) []byte {
	r.need(n)
	out := make([]byte, n)
	copy(out, r.b[r.pos:r.pos+n])
	r.pos += n
	return out
}

// Peek returns up to n bytes starting at the cursor without advancing it.
// It returns fewer than n bytes near the end of the buffer.
func (r *Reader) Peek(n int) []byte {
	end := r.pos + n
	if end > len(r.b) {
		end = len(r.b)
	}
	return r.b[r.pos:end]
}

// CString reads a Windows-1252 string. With maxLen > 0 it reads a
// fixed-width field of up to maxLen bytes, cut at the first NUL, and
// advances past the whole field. With maxLen <= 0 it behaves like
// CStringToNUL.
func (r *Reader) CString(maxLen int) string {
	if maxLen <= 0 {
		return r.CStringToNUL()
	}
	end := r.pos + maxLen
	if end > len(r.b) {
		end = len(r.b)
	}
	run := r.b[r.pos:end]
	s := cp1252.DecodeCString(run)
	r.pos = end
	return s
}

// CStringToNUL reads a Windows-1252 string terminated by the first NUL
// byte found anywhere in the remainder of the buffer, consuming the NUL.
func (r *Reader) CStringToNUL() string {
	start := r.pos
	for r.pos < len(r.b) && r.b[r.pos] != 0 {
		r.pos++
	}
	s := cp1252.DecodeCString(r.b[start:r.pos])
	if r.pos < len(r.b) {
		r.pos++ // consume the NUL
	}
	return s
}
