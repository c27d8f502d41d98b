package c2m

import (
	"testing"

	"github.com/ChipMcCallahan/CCTools/cc2"
)

func buildLevel() *Level {
	level := NewLevel(2, 2)
	level.Title = "Test Room"
	level.Author = "Tester"
	level.Clue = "Look around"
	level.TimeLimit = 150
	level.CC1Boots = true

	el := cc2.NewElement(cc2.Walker)
	el.Dir = cc2.DirN
	level.At(0, 0).Set(el)
	level.At(1, 1).Set(cc2.NewElement(cc2.RedKey))
	return level
}

func TestC2MRoundTripPreservesMetadataAndMap(t *testing.T) {
	level := buildLevel()
	b := Write(level)

	got, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Title != level.Title {
		t.Errorf("Title = %q, want %q", got.Title, level.Title)
	}
	if got.Author != level.Author {
		t.Errorf("Author = %q, want %q", got.Author, level.Author)
	}
	if got.Clue != level.Clue {
		t.Errorf("Clue = %q, want %q", got.Clue, level.Clue)
	}
	if got.TimeLimit != level.TimeLimit {
		t.Errorf("TimeLimit = %d, want %d", got.TimeLimit, level.TimeLimit)
	}
	if !got.CC1Boots {
		t.Error("CC1Boots should round-trip true")
	}
	if got.Width != 2 || got.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", got.Width, got.Height)
	}
	if got.At(0, 0).Mob == nil || got.At(0, 0).Mob.Tile != cc2.Walker {
		t.Fatalf("cell (0,0) mob = %v, want Walker", got.At(0, 0).Mob)
	}
	if got.At(0, 0).Mob.Dir != cc2.DirN {
		t.Errorf("cell (0,0) mob dir = %v, want DirN", got.At(0, 0).Mob.Dir)
	}
	if got.At(1, 1).Pickup == nil || got.At(1, 1).Pickup.Tile != cc2.RedKey {
		t.Fatalf("cell (1,1) pickup = %v, want RedKey", got.At(1, 1).Pickup)
	}
}

func TestC2MRoundTripThroughPackedMap(t *testing.T) {
	level := buildLevel()
	level.MapPacked = true
	b := Write(level)

	got, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.MapPacked {
		t.Error("MapPacked should round-trip true when the level was packed")
	}
	if got.At(0, 0).Mob == nil || got.At(0, 0).Mob.Tile != cc2.Walker {
		t.Fatalf("packed round trip lost the mob at (0,0): %v", got.At(0, 0).Mob)
	}
}

func TestModifierRoundTripForWiredTile(t *testing.T) {
	level := NewLevel(1, 1)
	el := cc2.NewElement(cc2.Floor)
	el.Wires = 0x0A
	el.WireTunnels = 0x05
	level.At(0, 0).Set(el)

	b := Write(level)
	got, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	terrain := got.At(0, 0).Terrain
	if terrain.Wires != 0x0A || terrain.WireTunnels != 0x05 {
		t.Errorf("Wires/WireTunnels = %#x/%#x, want 0xa/0x5", terrain.Wires, terrain.WireTunnels)
	}
}

func TestModifierOmittedWhenAllZero(t *testing.T) {
	b := encodeMap(cc2.NewLevel(1, 1))
	// A bare Floor cell with no modifier data should be a single byte:
	// the tile code, with no MODIFIER_* wrapper prefixed.
	if len(b) != 3 || b[2] != cc2.Floor.ID {
		t.Errorf("encodeMap(bare floor) = % x, want [w h %#x]", b, cc2.Floor.ID)
	}
}

func TestFileVersionAndEditorVersionRoundTripIndependently(t *testing.T) {
	level := buildLevel()
	level.Vers = "7"
	level.EditorVers = "1.4 Beta"

	b := Write(level)
	got, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Vers != "7" {
		t.Errorf("Vers = %q, want %q", got.Vers, "7")
	}
	if got.EditorVers != "1.4 Beta" {
		t.Errorf("EditorVers = %q, want %q", got.EditorVers, "1.4 Beta")
	}
}
