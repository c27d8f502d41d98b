package cc2

import "testing"

func TestIceSetHasFiveMembers(t *testing.T) {
	if len(Ice()) != 5 {
		t.Fatalf("len(Ice()) = %d, want 5", len(Ice()))
	}
	if !Ice().Contains(IceFloor) || !Ice().Contains(IceNE) {
		t.Fatal("Ice() must contain IceFloor and every corner")
	}
}

func TestValuesWithHardcodedDirectionsExcludesForceRandomAndBareIce(t *testing.T) {
	s := ValuesWithHardcodedDirections()
	if s.Contains(ForceRandom) {
		t.Error("ForceRandom must not be in ValuesWithHardcodedDirections")
	}
	if s.Contains(IceFloor) {
		t.Error("IceFloor must not be in ValuesWithHardcodedDirections")
	}
	if !s.Contains(ForceN) || !s.Contains(IceNE) || !s.Contains(SwivelDoorSW) {
		t.Error("ValuesWithHardcodedDirections must contain directional forces, ice corners, and swivels")
	}
}

func TestMobsUnionsMonstersBlocksPlayers(t *testing.T) {
	mobs := Mobs()
	for _, tile := range []*Tile{Walker, DirtBlock, Chip, Melinda} {
		if !mobs.Contains(tile) {
			t.Errorf("Mobs() missing %s", tile)
		}
	}
	if mobs.Contains(Wall) {
		t.Error("Mobs() must not contain Wall")
	}
}

func TestPickupsCoversKeysToolsFlagsTimeBombs(t *testing.T) {
	pickups := Pickups()
	for _, tile := range []*Tile{RedKey, Cleats, Flag10, TimeBonus, Bomb, GreenBomb} {
		if !pickups.Contains(tile) {
			t.Errorf("Pickups() missing %s", tile)
		}
	}
}

func TestByIDAndByNameAgree(t *testing.T) {
	for _, tile := range Tiles {
		got, err := ByID(tile.ID)
		if err != nil {
			t.Fatalf("ByID(%#x): %v", tile.ID, err)
		}
		if got != tile {
			t.Errorf("ByID(%#x) = %s, want %s", tile.ID, got, tile)
		}
		byName, ok := ByName(tile.Name)
		if !ok || byName != tile {
			t.Errorf("ByName(%s) = (%v, %v), want (%s, true)", tile.Name, byName, ok, tile)
		}
	}
}

func TestByIDRejectsUnknownCode(t *testing.T) {
	if _, err := ByID(0xFF); err == nil {
		t.Fatal("ByID(0xFF) should fail: no tile occupies that code")
	}
}
