package c2m

import (
	"fmt"

	"github.com/ChipMcCallahan/CCTools/cc2"
	"github.com/ChipMcCallahan/CCTools/ccbinary"
	"github.com/ChipMcCallahan/CCTools/cctoolserr"
	"github.com/ChipMcCallahan/CCTools/internal/cp1252"
)

// replaceGrid installs a freshly-decoded grid into level while preserving
// the text/option metadata already collected from earlier sections.
func replaceGrid(level *Level, grid *cc2.Level) {
	grid.Title, grid.Author, grid.Clue, grid.Note = level.Title, level.Author, level.Clue, level.Note
	grid.Lock, grid.Vers, grid.EditorVers = level.Lock, level.Vers, level.EditorVers
	grid.TimeLimit, grid.EditorWindow, grid.VerifiedReplay = level.TimeLimit, level.EditorWindow, level.VerifiedReplay
	grid.HideMap, grid.ReadOnly, grid.ReplayHash = level.HideMap, level.ReadOnly, level.ReplayHash
	grid.HideLogic, grid.CC1Boots, grid.BlobPatterns = level.HideLogic, level.CC1Boots, level.BlobPatterns
	grid.Key, grid.Replay, grid.PRPL = level.Key, level.Replay, level.PRPL
	level.Level = grid
}

// Parse decodes a single C2M level from raw bytes using the zero Config
// (spec.md §4.7, §4.8), mirroring repparser.Parse deferring to
// ParseFileConfig/ParseConfig with a zero Config.
func Parse(b []byte) (*Level, error) {
	return ParseConfig(b, Config{})
}

// ParseConfig decodes a single C2M level honoring cfg.
func ParseConfig(b []byte, cfg Config) (level *Level, err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = fmt.Errorf("c2m: parse: %w", e)
			} else {
				err = fmt.Errorf("c2m: parse: %v", p)
			}
			level = nil
		}
	}()

	r := ccbinary.NewReader(b)
	sections := readSections(r)

	level = &Level{Level: cc2.NewLevel(0, 0)}
	var order []string
	for _, s := range sections {
		order = append(order, s.Tag)
		switch {
		case isTextTag(s.Tag):
			text := cp1252.DecodeCString(stripTrailingNUL(s.Value))
			switch s.Tag {
			case TagTitl:
				level.Title = text
			case TagAuth:
				level.Author = text
			case TagClue:
				level.Clue = text
			case TagNote:
				level.Note = text
			case TagLock:
				level.Lock = text
			case TagVers:
				level.EditorVers = text
			case TagCC2M:
				level.Vers = text
			}
		case s.Tag == TagMap:
			replaceGrid(level, decodeMap(s.Value))
			level.MapPacked = false
		case s.Tag == TagPack:
			replaceGrid(level, decodeMap(Unpack(s.Value)))
			level.MapPacked = true
		case s.Tag == TagKey:
			level.Key = s.Value
		case s.Tag == TagRepl:
			if !cfg.SkipReplay {
				level.Replay = s.Value
			}
			level.ReplayPacked = false
		case s.Tag == TagPrpl:
			if !cfg.SkipReplay {
				level.PRPL = s.Value
			}
		case s.Tag == TagOptn:
			opt, oerr := parseOptions(s.Value)
			if oerr != nil {
				return nil, oerr
			}
			applyOptions(level, opt)
		case s.Tag == TagRdny:
			if len(s.Value) != 0 {
				panic(&cctoolserr.SectionLengthMismatchError{Tag: TagRdny, Declared: len(s.Value), Actual: 0})
			}
			level.ReadOnly = true
		default:
			panic(&cctoolserr.UnknownSectionError{Tag: s.Tag})
		}
	}
	level.SectionOrder = order
	return level, nil
}

func applyOptions(level *Level, o Options) {
	level.TimeLimit = int(o.TimeLimit)
	level.EditorWindow = o.EditorWindow
	level.VerifiedReplay = o.VerifiedReplay
	level.HideMap = o.HideMap
	level.ReadOnly = level.ReadOnly || o.ReadOnly
	level.ReplayHash = o.ReplayHash
	level.HideLogic = o.HideLogic
	level.CC1Boots = o.CC1Boots
	level.BlobPatterns = o.BlobPatterns
}

func stripTrailingNUL(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == 0 {
		return b[:len(b)-1]
	}
	return b
}
