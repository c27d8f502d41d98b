package tws

import (
	"encoding/binary"
	"testing"

	"github.com/ChipMcCallahan/CCTools/ccbinary"
)

func buildReplayRecord(level uint16, password [4]byte, extended bool) []byte {
	w := ccbinary.NewWriter()
	w.U16(level)
	w.Bytes(password[:])
	if extended {
		w.U8(0)    // flag
		w.U8(0)    // slide dir and step
		w.U32(123) // RNG seed
		w.I32(0)   // tick count
		w.U8(0x29) // one Format1Byte move
	}
	return w.Written()
}

func buildFile(records [][]byte) []byte {
	w := ccbinary.NewWriter()
	w.U32(Signature)
	w.U16(uint16(RulesetMS))
	w.U8(5) // last visited level
	w.U8(0) // remainder
	for _, body := range records {
		w.I32(int32(len(body)))
		w.Bytes(body)
	}
	return w.Written()
}

func TestParseRejectsBadSignature(t *testing.T) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b, 0xDEADBEEF)
	if _, err := Parse(b); err == nil {
		t.Fatal("Parse should reject a file with the wrong signature")
	}
}

func TestParseDecodesHeaderAndReplays(t *testing.T) {
	rec := buildReplayRecord(1, [4]byte{'A', 'B', 'C', 'D'}, true)
	b := buildFile([][]byte{rec})

	set, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.Ruleset != RulesetMS {
		t.Errorf("Ruleset = %v, want RulesetMS", set.Ruleset)
	}
	if set.LastVisitedLevel != 5 {
		t.Errorf("LastVisitedLevel = %d, want 5", set.LastVisitedLevel)
	}
	if set.LevelsetName != "Unspecified" {
		t.Errorf("LevelsetName = %q, want %q (no leading name record present)", set.LevelsetName, "Unspecified")
	}
	if len(set.Replays) != 1 {
		t.Fatalf("got %d replays, want 1", len(set.Replays))
	}
	r := set.Replays[0]
	if r.LevelNumber != 1 {
		t.Errorf("LevelNumber = %d, want 1", r.LevelNumber)
	}
	if !r.HasExtendedHeader {
		t.Error("HasExtendedHeader should be true for a full record")
	}
	if len(r.Moves) != 1 {
		t.Fatalf("got %d moves, want 1", len(r.Moves))
	}
	if set.FormatCounts[Format1Byte] != 1 {
		t.Errorf("FormatCounts[Format1Byte] = %d, want 1", set.FormatCounts[Format1Byte])
	}
}

func TestParseShortRecordHasNoExtendedHeader(t *testing.T) {
	rec := buildReplayRecord(2, [4]byte{0, 0, 0, 0}, false)
	b := buildFile([][]byte{rec})

	set, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.Replays[0].HasExtendedHeader {
		t.Error("a 6-byte record should not have an extended header")
	}
}

func TestParseDetectsLeadingLevelsetNameRecord(t *testing.T) {
	nameRec := make([]byte, 32)
	copy(nameRec[16:], "MyLevelPack")
	rec := buildReplayRecord(1, [4]byte{'A', 'B', 'C', 'D'}, false)
	b := buildFile([][]byte{nameRec, rec})

	set, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.LevelsetName != "MyLevelPack" {
		t.Errorf("LevelsetName = %q, want %q", set.LevelsetName, "MyLevelPack")
	}
	if len(set.Replays) != 1 {
		t.Fatalf("got %d replays, want 1 (name record should not count as a replay)", len(set.Replays))
	}
}
