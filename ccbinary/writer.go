package ccbinary

import (
	"encoding/binary"

	"github.com/ChipMcCallahan/CCTools/internal/cp1252"
)

// Writer accumulates little-endian bytes into a growing buffer, the write
// counterpart to Reader. It mirrors CCBinary.Writer's byte/short/long/bytes
// API one-for-one.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// U8 appends a single byte.
func (w *Writer) U8(v byte) {
	w.buf = append(w.buf, v)
}

// U16 appends v as 2 little-endian bytes.
func (w *Writer) U16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// U16s appends a sequence of uint16 values.
func (w *Writer) U16s(vs []uint16) {
	for _, v := range vs {
		w.U16(v)
	}
}

// U32 appends v as 4 little-endian bytes.
func (w *Writer) U32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// I32 appends v as 4 little-endian bytes.
func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// Bytes appends an arbitrary byte slice verbatim.
func (w *Writer) Bytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// CString appends s encoded as Windows-1252 followed by a NUL terminator.
func (w *Writer) CString(s string) {
	w.buf = append(w.buf, cp1252.Encode(s)...)
	w.buf = append(w.buf, 0)
}

// Written returns everything written so far.
func (w *Writer) Written() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}
