package cc1

import "testing"

func TestValidPlusInvalidCoversAll(t *testing.T) {
	valid, invalid, all := Valid(), Invalid(), All()
	if len(valid)+len(invalid) != len(all) {
		t.Fatalf("len(valid)+len(invalid) = %d, want %d", len(valid)+len(invalid), len(all))
	}
	for tile := range invalid {
		if valid.Contains(tile) {
			t.Errorf("%s is in both Valid and Invalid", tile)
		}
	}
}

func TestMobsAndNonmobsPartitionAll(t *testing.T) {
	mobs, nonmobs, all := Mobs(), Nonmobs(), All()
	if len(mobs)+len(nonmobs) != len(all) {
		t.Fatalf("len(mobs)+len(nonmobs) = %d, want %d", len(mobs)+len(nonmobs), len(all))
	}
	for tile := range mobs {
		if nonmobs.Contains(tile) {
			t.Errorf("%s is in both Mobs and Nonmobs", tile)
		}
	}
}

func TestCompassSetsHaveFourMembers(t *testing.T) {
	for name, set := range map[string]Set{
		"Ants": Ants(), "Gliders": Gliders(), "Tanks": Tanks(),
		"Teeth": Teeth(), "Blobs": Blobs(), "Walkers": Walkers(),
		"Balls": Balls(), "Fireballs": Fireballs(), "Paramecia": Paramecia(),
	} {
		if len(set) != 4 {
			t.Errorf("%s has %d members, want 4", name, len(set))
		}
	}
}

func TestUnionAndDifference(t *testing.T) {
	a := NewSet(Wall, Floor)
	b := NewSet(Floor, Water)
	union := a.Union(b)
	if len(union) != 3 {
		t.Fatalf("len(union) = %d, want 3", len(union))
	}
	diff := a.Difference(b)
	if !diff.Contains(Wall) || diff.Contains(Floor) {
		t.Fatalf("Difference = %v, want {Wall}", diff)
	}
}
