// Package c2m implements the CC2 C2M container codec: the tag/length/value
// section layer, the OPTN composite record, the tile-grid map codec, and
// the LZ77-like packer (spec.md §4.7, §4.8, §4.9).
package c2m

import "github.com/ChipMcCallahan/CCTools/cc2"

// Section tags (spec.md §4.7). Tags are always 4 ASCII bytes, space-padded.
const (
	TagCC2M = "CC2M"
	TagLock = "LOCK"
	TagTitl = "TITL"
	TagAuth = "AUTH"
	TagVers = "VERS"
	TagClue = "CLUE"
	TagNote = "NOTE"
	TagMap  = "MAP "
	TagPack = "PACK"
	TagKey  = "KEY "
	TagRepl = "REPL"
	TagPrpl = "PRPL"
	TagOptn = "OPTN"
	TagRdny = "RDNY"
	TagEnd  = "END "
)

// TextTags carries Windows-1252 text and is written, in this order, before
// any raw-byte section (spec.md §4.7).
var TextTags = []string{TagCC2M, TagLock, TagTitl, TagAuth, TagVers, TagClue, TagNote}

// RawTags carries opaque bytes and is written after the text tags.
var RawTags = []string{TagMap, TagPack, TagKey, TagRepl, TagPrpl}

// Config controls optional parse work. A caller that only needs the map can
// skip unpacking the attached replay.
type Config struct {
	// SkipReplay drops the REPL/PRPL section bytes: Level.Replay and
	// Level.PRPL stay nil. Neither section is unpacked either way.
	SkipReplay bool
}

// Options is the decoded OPTN composite record (spec.md §4.7's field table).
type Options struct {
	TimeLimit      uint16
	EditorWindow   bool
	VerifiedReplay bool
	HideMap        bool
	ReadOnly       bool
	ReplayHash     []byte
	HideLogic      bool
	CC1Boots       bool
	BlobPatterns   bool
}

// Level is a decoded C2M map plus the raw/opaque sections a parser cannot
// or should not interpret further (spec.md §4.7, §4.8).
type Level struct {
	*cc2.Level

	// SectionOrder records the order sections were seen in. Write does
	// not consult it and always emits sections in its own fixed order.
	SectionOrder []string
	// MapPacked records whether the map section was stored packed (tag
	// PACK) rather than plain (tag MAP ), so the writer round-trips the
	// original choice.
	MapPacked bool
	// ReplayPacked mirrors MapPacked for the REPL section.
	ReplayPacked bool
}

// NewLevel returns an empty w×h Level.
func NewLevel(w, h int) *Level {
	return &Level{Level: cc2.NewLevel(w, h)}
}

// Levelset is a named collection of C2M levels plus the opaque C2G
// playlist/script payload a level-pack archive carries alongside them
// (SPEC_FULL.md §3, original_source's ParsedC2MLevelset).
type Levelset struct {
	Name   string
	Levels []*Level
	C2G    []byte
}
