package c2m

import (
	"fmt"

	"github.com/ChipMcCallahan/CCTools/ccbinary"
	"github.com/ChipMcCallahan/CCTools/cctoolserr"
)

// rawSection is one tag/length/value triple as read off the wire, before
// any tag-specific interpretation.
type rawSection struct {
	Tag   string
	Value []byte
}

// readSections reads sections until (and including) the terminating END
// tag, returning every section seen before it (spec.md §4.7).
func readSections(r *ccbinary.Reader) []rawSection {
	var out []rawSection
	for {
		tag := string(r.Slice(4))
		if tag == TagEnd {
			return out
		}
		length := int(r.U32())
		value := r.Slice(length)
		out = append(out, rawSection{Tag: tag, Value: value})
	}
}

func writeSection(w *ccbinary.Writer, tag string, value []byte) {
	w.Bytes([]byte(tag))
	w.U32(uint32(len(value)))
	w.Bytes(value)
}

func isTextTag(tag string) bool {
	for _, t := range TextTags {
		if t == tag {
			return true
		}
	}
	return false
}

func isRawTag(tag string) bool {
	for _, t := range RawTags {
		if t == tag {
			return true
		}
	}
	return false
}

// parseOptions decodes the OPTN composite record (spec.md §4.7). Fields
// beyond the section's declared length are left at their zero value; the
// total bytes actually consumed must equal len(b) exactly or the section
// is malformed.
func parseOptions(b []byte) (Options, error) {
	r := ccbinary.NewReader(b)
	var o Options
	read := func(n int, fn func()) bool {
		if r.Remaining() < n {
			return false
		}
		fn()
		return true
	}
	if !read(2, func() { o.TimeLimit = r.U16() }) {
		return o, finishOptions(r, b, o)
	}
	if !read(1, func() { o.EditorWindow = r.U8() != 0 }) {
		return o, finishOptions(r, b, o)
	}
	if !read(1, func() { o.VerifiedReplay = r.U8() != 0 }) {
		return o, finishOptions(r, b, o)
	}
	if !read(1, func() { o.HideMap = r.U8() != 0 }) {
		return o, finishOptions(r, b, o)
	}
	if !read(1, func() { o.ReadOnly = r.U8() != 0 }) {
		return o, finishOptions(r, b, o)
	}
	if !read(16, func() { o.ReplayHash = r.Slice(16) }) {
		return o, finishOptions(r, b, o)
	}
	if !read(1, func() { o.HideLogic = r.U8() != 0 }) {
		return o, finishOptions(r, b, o)
	}
	if !read(1, func() { o.CC1Boots = r.U8() != 0 }) {
		return o, finishOptions(r, b, o)
	}
	if !read(1, func() { o.BlobPatterns = r.U8() != 0 }) {
		return o, finishOptions(r, b, o)
	}
	return o, finishOptions(r, b, o)
}

func finishOptions(r *ccbinary.Reader, b []byte, o Options) error {
	if r.Position() != len(b) {
		return fmt.Errorf("c2m: OPTN: %w", &cctoolserr.SectionLengthMismatchError{
			Tag: TagOptn, Declared: len(b), Actual: r.Position(),
		})
	}
	return nil
}

// writeOptions encodes o as the full 25-byte record; it never emits a
// truncated one. Trailing fields that are false/zero decode the same as
// fields that are absent, so a short record still round-trips in meaning.
func writeOptions(o Options) []byte {
	w := ccbinary.NewWriter()
	w.U16(o.TimeLimit)
	w.U8(boolByte(o.EditorWindow))
	w.U8(boolByte(o.VerifiedReplay))
	w.U8(boolByte(o.HideMap))
	w.U8(boolByte(o.ReadOnly))
	hash := o.ReplayHash
	if len(hash) != 16 {
		hash = make([]byte, 16)
		copy(hash, o.ReplayHash)
	}
	w.Bytes(hash)
	w.U8(boolByte(o.HideLogic))
	w.U8(boolByte(o.CC1Boots))
	w.U8(boolByte(o.BlobPatterns))
	return w.Written()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
