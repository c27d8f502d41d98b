package tws

import (
	"fmt"

	"github.com/ChipMcCallahan/CCTools/ccbinary"
	"github.com/ChipMcCallahan/CCTools/cctoolserr"
	"github.com/ChipMcCallahan/CCTools/internal/cp1252"
	"github.com/google/uuid"
)

// Parse decodes a full TWS file (spec.md §4.10).
func Parse(b []byte) (set *ReplaySet, err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = fmt.Errorf("tws: parse: %w", e)
			} else {
				err = fmt.Errorf("tws: parse: %v", p)
			}
			set = nil
		}
	}()

	r := ccbinary.NewReader(b)
	sig := r.U32()
	if sig != Signature {
		panic(&cctoolserr.InvalidSignatureError{Want: Signature, Got: sig})
	}
	ruleset := Ruleset(r.U16())
	lastLevel := int(r.U8())
	remainder := int8(r.U8())

	set = &ReplaySet{
		Ruleset:          ruleset,
		LastVisitedLevel: lastLevel,
		RemainderCount:   remainder,
		LevelsetName:     "Unspecified",
		FormatCounts:     map[MoveFormat]int{},
	}

	first := true
	for r.Remaining() > 0 {
		length := int(r.I32())
		body := r.Slice(length)
		if first && isLevelsetNameRecord(body) {
			set.LevelsetName = decodeLevelsetName(body)
			first = false
			continue
		}
		first = false
		set.Replays = append(set.Replays, parseReplay(body, set.FormatCounts))
	}
	return set, nil
}

// isLevelsetNameRecord detects the optional leading level-set-name record
// via 6 consecutive zero bytes at its start (spec.md §4.10).
func isLevelsetNameRecord(body []byte) bool {
	if len(body) < 6 {
		return false
	}
	for i := 0; i < 6; i++ {
		if body[i] != 0 {
			return false
		}
	}
	return true
}

func decodeLevelsetName(body []byte) string {
	r := ccbinary.NewReader(body)
	r.Slice(16)
	return r.CStringToNUL()
}

func parseReplay(body []byte, counts map[MoveFormat]int) Replay {
	r := ccbinary.NewReader(body)
	level := int(r.U16())
	password, _ := cp1252.Decode(r.Slice(4))

	rep := Replay{ID: uuid.New(), LevelNumber: level, Password: password}
	if r.Remaining() <= 2 {
		return rep
	}

	rep.HasExtendedHeader = true
	rep.Flag = r.U8()
	rep.SlideDirAndStep = r.U8()
	rep.RNGSeed = r.U32()
	rep.TickCount = r.I32()
	rep.Moves = decodeMoves(r, counts)
	return rep
}
