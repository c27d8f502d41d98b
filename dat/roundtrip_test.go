package dat

import (
	"bytes"
	"testing"

	"github.com/ChipMcCallahan/CCTools/cc1"
)

func buildLevel() *Level {
	level := NewLevel()
	level.Title = "Test Chamber"
	level.Hint = "Go around"
	level.Password = "ABCDE"
	level.Time = 100
	level.Chips = 5

	buttonPos, trapPos := cc1.Point{X: 1, Y: 1}.Index(), cc1.Point{X: 2, Y: 2}.Index()
	level.At(buttonPos).Add(cc1.TrapButton)
	level.At(trapPos).Add(cc1.Trap)
	level.Traps = append(level.Traps, cc1.Wire{Button: buttonPos, Target: trapPos})
	level.TrapOpenShut[buttonPos] = 1

	cloneButtonPos, clonerPos := cc1.Point{X: 4, Y: 4}.Index(), cc1.Point{X: 5, Y: 5}.Index()
	level.At(cloneButtonPos).Add(cc1.CloneButton)
	level.At(clonerPos).Add(cc1.Cloner)
	level.Cloners = append(level.Cloners, cc1.Wire{Button: cloneButtonPos, Target: clonerPos})

	level.Movement = []int{64, 65, 66}
	level.At(64).Add(cc1.AntN)
	return level
}

func TestDatRoundTripPreservesLevelContent(t *testing.T) {
	ls := &Levelset{Levels: []*Level{buildLevel()}}

	b, err := Write(ls)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.Levels) != 1 {
		t.Fatalf("got %d levels, want 1", len(got.Levels))
	}

	want := ls.Levels[0]
	have := got.Levels[0]
	if have.Title != want.Title {
		t.Errorf("Title = %q, want %q", have.Title, want.Title)
	}
	if have.Hint != want.Hint {
		t.Errorf("Hint = %q, want %q", have.Hint, want.Hint)
	}
	if have.Password != want.Password {
		t.Errorf("Password = %q, want %q", have.Password, want.Password)
	}
	if have.Time != want.Time || have.Chips != want.Chips {
		t.Errorf("Time/Chips = %d/%d, want %d/%d", have.Time, have.Chips, want.Time, want.Chips)
	}
	if len(have.Traps) != 1 || have.Traps[0] != want.Traps[0] {
		t.Errorf("Traps = %+v, want %+v", have.Traps, want.Traps)
	}
	if len(have.Cloners) != 1 || have.Cloners[0] != want.Cloners[0] {
		t.Errorf("Cloners = %+v, want %+v", have.Cloners, want.Cloners)
	}
	if len(have.Movement) != len(want.Movement) {
		t.Errorf("Movement = %v, want %v", have.Movement, want.Movement)
	}
	for i, pos := range have.Map {
		if pos.Top != want.Map[i].Top || pos.Bottom != want.Map[i].Bottom {
			t.Fatalf("cell %d mismatch: got %+v, want %+v", i, pos, want.Map[i])
		}
	}
}

func TestDatWriteIsByteStableAcrossRoundTrip(t *testing.T) {
	ls := &Levelset{Levels: []*Level{buildLevel()}}

	b1, err := Write(ls)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	parsed, err := Parse(b1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b2, err := Write(parsed)
	if err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatalf("re-encoding a parsed level changed the bytes:\nfirst:  % x\nsecond: % x", b1, b2)
	}
}

func TestRLERoundTrip(t *testing.T) {
	raw := make([]byte, cc1GridCells)
	for i := range raw {
		raw[i] = byte(i % 7)
	}
	compressed := compressLayer(raw)
	decompressed := decompressLayer(compressed)
	if !bytes.Equal(raw, decompressed) {
		t.Fatal("RLE round trip did not reproduce the original layer")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	encoded, err := encodePassword("HELLO")
	if err != nil {
		t.Fatalf("encodePassword: %v", err)
	}
	if decodePassword(encoded) != "HELLO" {
		t.Fatalf("decodePassword(encodePassword(%q)) = %q", "HELLO", decodePassword(encoded))
	}
}
