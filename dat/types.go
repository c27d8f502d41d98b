// Package dat implements the CC1 DAT level-pack codec: section parsing,
// RLE layer compression, password obfuscation, and the field-order/extra-
// field preservation that makes byte-exact round trips possible
// (spec.md §4.6).
package dat

import "github.com/ChipMcCallahan/CCTools/cc1"

// Standard DAT trailer field tags (spec.md §4.6).
const (
	TitleField    = 3
	TrapsField    = 4
	CloneField    = 5
	PasswordField = 6
	HintField     = 7
	MovementField = 10
)

// StandardFields is the canonical field order used when a parsed record
// carried none of its own (a freshly-built level, never round-tripped).
var StandardFields = []byte{TitleField, TrapsField, CloneField, PasswordField, HintField, MovementField}

// DefaultMagicNumber is the CC1 DAT magic number the writer emits when a
// levelset did not supply one (spec.md §6).
const DefaultMagicNumber uint32 = 0x0002AAAC

// ExtraField is an opaque, unrecognised trailer field preserved verbatim
// so round-trip fidelity holds (spec.md §4.6).
type ExtraField struct {
	Tag     byte
	Content []byte
}

// Level wraps a cc1.Level with the DAT-specific bookkeeping needed for an
// exact byte round trip: the record number, map-detail word, the trailer
// field order as originally seen, any unrecognised trailer fields, and the
// per-trap open/shut flag that cc1.Level's Traps wiring does not itself carry.
//
// A Level built fresh (not parsed from bytes) leaves these at their zero
// value; the writer falls back to positional numbering, MapDetail=1, and
// StandardFields, matching how the source's CCBinary-level object behaves
// when no parsed record backs it.
type Level struct {
	*cc1.Level

	RecordNumber int
	MapDetail    int
	FieldOrder   []byte
	ExtraFields  []ExtraField
	// TrapOpenShut maps a trap-button position to its stored open/shut
	// word; entries absent here default to 0 on write.
	TrapOpenShut map[int]uint16
}

// NewLevel returns an empty Level wrapping a fresh cc1.Level.
func NewLevel() *Level {
	return &Level{Level: cc1.NewLevel(), TrapOpenShut: map[int]uint16{}}
}

// Levelset is an ordered collection of DAT levels plus the file's magic
// number (spec.md §6).
type Levelset struct {
	Levels      []*Level
	MagicNumber uint32
}
