package c2m

import (
	"github.com/ChipMcCallahan/CCTools/ccbinary"
	"github.com/ChipMcCallahan/CCTools/internal/cp1252"
)

// Write encodes a Level to C2M bytes (spec.md §4.7). Text fields are
// emitted first in canonical order, then raw-byte fields, then OPTN if any
// option is present, then RDNY if read-only, then END; only present fields
// are written.
func Write(level *Level) []byte {
	w := ccbinary.NewWriter()

	textValue := func(tag string) (string, bool) {
		switch tag {
		case TagCC2M:
			return level.Vers, level.Vers != ""
		case TagLock:
			return level.Lock, level.Lock != ""
		case TagTitl:
			return level.Title, level.Title != ""
		case TagAuth:
			return level.Author, level.Author != ""
		case TagVers:
			return level.EditorVers, level.EditorVers != ""
		case TagClue:
			return level.Clue, level.Clue != ""
		case TagNote:
			return level.Note, level.Note != ""
		}
		return "", false
	}
	for _, tag := range TextTags {
		if text, ok := textValue(tag); ok {
			writeSection(w, tag, append(cp1252.Encode(text), 0))
		}
	}

	if level.Key != nil {
		writeSection(w, TagKey, level.Key)
	}
	if level.Level != nil {
		body := encodeMap(level.Level)
		if level.MapPacked {
			writeSection(w, TagPack, Pack(body))
		} else {
			writeSection(w, TagMap, body)
		}
	}
	if level.Replay != nil {
		if level.ReplayPacked {
			writeSection(w, TagRepl, Pack(level.Replay))
		} else {
			writeSection(w, TagRepl, level.Replay)
		}
	}
	if level.PRPL != nil {
		writeSection(w, TagPrpl, level.PRPL)
	}

	if hasOptions(level) {
		writeSection(w, TagOptn, writeOptions(Options{
			TimeLimit:      uint16(level.TimeLimit),
			EditorWindow:   level.EditorWindow,
			VerifiedReplay: level.VerifiedReplay,
			HideMap:        level.HideMap,
			ReadOnly:       level.ReadOnly,
			ReplayHash:     level.ReplayHash,
			HideLogic:      level.HideLogic,
			CC1Boots:       level.CC1Boots,
			BlobPatterns:   level.BlobPatterns,
		}))
	}
	if level.ReadOnly {
		writeSection(w, TagRdny, nil)
	}

	w.Bytes([]byte(TagEnd))
	return w.Written()
}

func hasOptions(level *Level) bool {
	return level.TimeLimit != 0 || level.EditorWindow || level.VerifiedReplay ||
		level.HideMap || level.ReadOnly || len(level.ReplayHash) > 0 ||
		level.HideLogic || level.CC1Boots || level.BlobPatterns
}
