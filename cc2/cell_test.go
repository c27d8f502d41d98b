package cc2

import "testing"

func TestNewCellIsCompleteWithFloorTerrain(t *testing.T) {
	c := NewCell()
	if !c.IsComplete() {
		t.Fatal("a fresh cell must be complete (Terrain set)")
	}
	if c.Terrain.Tile != Floor {
		t.Fatalf("Terrain = %s, want Floor", c.Terrain.Tile)
	}
	if c.Panel != nil || c.Mob != nil || c.Pickup != nil || c.NotAllowed != nil {
		t.Fatal("a fresh cell must have every other slot empty")
	}
}

func TestSetRoutesElementToItsCategorySlot(t *testing.T) {
	c := NewCell()
	c.Set(NewElement(Walker))
	if c.Mob == nil || c.Mob.Tile != Walker {
		t.Fatalf("Mob slot = %v, want Walker", c.Mob)
	}

	c.Set(NewElement(RedKey))
	if c.Pickup == nil || c.Pickup.Tile != RedKey {
		t.Fatalf("Pickup slot = %v, want RedKey", c.Pickup)
	}

	c.Set(NewElement(ThinWallCanopy))
	if c.Panel == nil || c.Panel.Tile != ThinWallCanopy {
		t.Fatalf("Panel slot = %v, want ThinWallCanopy", c.Panel)
	}
}

func TestElementsOrderIsPanelMobNotAllowedPickupTerrain(t *testing.T) {
	c := NewCell()
	c.Set(NewElement(Walker))
	c.Set(NewElement(RedKey))
	c.Set(NewElement(ThinWallCanopy))

	got := c.Elements()
	want := []*Tile{ThinWallCanopy, Walker, RedKey, Floor}
	if len(got) != len(want) {
		t.Fatalf("Elements() has %d entries, want %d", len(got), len(want))
	}
	for i, tile := range want {
		if got[i].Tile != tile {
			t.Errorf("Elements()[%d] = %s, want %s", i, got[i].Tile, tile)
		}
	}
}

func TestClearEmptiesSlot(t *testing.T) {
	c := NewCell()
	c.Set(NewElement(Walker))
	c.Clear(CategoryMob)
	if c.Mob != nil {
		t.Fatal("Clear(CategoryMob) should empty the Mob slot")
	}
}
