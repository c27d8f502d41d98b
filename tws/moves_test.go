package tws

import (
	"testing"

	"github.com/ChipMcCallahan/CCTools/ccbinary"
)

func TestDecodeMovesFormat1Byte(t *testing.T) {
	// TTTDDD01: format tag 01 in bits 0-1, direction bits 2-4, time bits 5-7.
	// raw = 0b001_01_0_01 -> bit layout bit7..0 = 0,0,1,0,1,0,0,1 = 0x29:
	// direction (bits 2-4) = 0b010 = 2, time (bits 5-7) = 0b001 = 1.
	raw := []byte{0x29}
	counts := map[MoveFormat]int{}
	moves := decodeMoves(ccbinary.NewReader(raw), counts)

	if len(moves) != 1 {
		t.Fatalf("got %d moves, want 1", len(moves))
	}
	if moves[0].Format != Format1Byte {
		t.Errorf("Format = %v, want Format1Byte", moves[0].Format)
	}
	if moves[0].Tick != 2 {
		t.Errorf("Tick = %d, want 2 (time 1 + 1)", moves[0].Tick)
	}
	if moves[0].Direction != 2 {
		t.Errorf("Direction = %d, want 2", moves[0].Direction)
	}
	if counts[Format1Byte] != 1 {
		t.Errorf("counts[Format1Byte] = %d, want 1", counts[Format1Byte])
	}
}

func TestDecodeMovesFormat3MoveTallies3PerByte(t *testing.T) {
	// FFEEDD00: format tag 00 in bits 0-1, first move's direction in bits
	// 2-3, second in bits 4-5, third in bits 6-7.
	raw := []byte{0b00_10_11_00}
	counts := map[MoveFormat]int{}
	moves := decodeMoves(ccbinary.NewReader(raw), counts)

	if len(moves) != 3 {
		t.Fatalf("got %d moves, want 3", len(moves))
	}
	wantDirs := []byte{3, 2, 0}
	for i, want := range wantDirs {
		if moves[i].Direction != want {
			t.Errorf("moves[%d].Direction = %d, want %d", i, moves[i].Direction, want)
		}
		if moves[i].Tick != (i+1)*4 {
			t.Errorf("moves[%d].Tick = %d, want %d", i, moves[i].Tick, (i+1)*4)
		}
	}
	if counts[Format3Move] != 3 {
		t.Errorf("counts[Format3Move] = %d, want 3", counts[Format3Move])
	}
}

func TestDecodeMovesEmptyReaderYieldsNoMoves(t *testing.T) {
	// An empty reader should simply produce no moves without looping.
	counts := map[MoveFormat]int{}
	moves := decodeMoves(ccbinary.NewReader(nil), counts)
	if len(moves) != 0 {
		t.Fatalf("got %d moves from an empty reader, want 0", len(moves))
	}
}

func TestDecodeMovesTicksAccumulate(t *testing.T) {
	raw := []byte{0x29, 0x29} // two identical Format1Byte moves
	counts := map[MoveFormat]int{}
	moves := decodeMoves(ccbinary.NewReader(raw), counts)
	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2", len(moves))
	}
	if moves[1].Tick != moves[0].Tick+2 {
		t.Errorf("second move Tick = %d, want %d", moves[1].Tick, moves[0].Tick+2)
	}
}
