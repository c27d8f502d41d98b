package cc2

import "testing"

func TestRightRotatesGatedTiles(t *testing.T) {
	cases := []struct{ from, want *Tile }{
		{ForceN, ForceE},
		{ForceE, ForceS},
		{ForceS, ForceW},
		{ForceW, ForceN},
		{IceNE, IceSE},
		{IceSE, IceSW},
		{SwivelDoorNE, SwivelDoorSE},
	}
	for _, c := range cases {
		if got := c.from.Right(); got != c.want {
			t.Errorf("%s.Right() = %s, want %s", c.from, got, c.want)
		}
	}
}

func TestRotationClosureOverHardcodedDirections(t *testing.T) {
	for tile := range ValuesWithHardcodedDirections() {
		if got := tile.Right().Right().Right().Right(); got != tile {
			t.Errorf("%s: four Rights did not return to self, got %s", tile, got)
		}
		if got := tile.Reverse(); got != tile.Right().Right() {
			t.Errorf("%s: Reverse() != Right().Right()", tile)
		}
		if got := tile.Left(); got != tile.Right().Right().Right() {
			t.Errorf("%s: Left() != three Rights", tile)
		}
	}
}

func TestForceRandomAndBareIceAreFixedPoints(t *testing.T) {
	if got := ForceRandom.Right(); got != ForceRandom {
		t.Errorf("ForceRandom.Right() = %s, want unchanged", got)
	}
	if got := IceFloor.Right(); got != IceFloor {
		t.Errorf("IceFloor.Right() = %s, want unchanged", got)
	}
}

func TestUngatedTileUnchangedByRotation(t *testing.T) {
	if got := Wall.Right(); got != Wall {
		t.Errorf("Wall.Right() = %s, want unchanged", got)
	}
}

func TestToggleIsAnInvolutionForPairedTiles(t *testing.T) {
	pairs := [][2]*Tile{
		{GreenChip, GreenBomb},
		{FlameJetOn, FlameJetOff},
		{GreenToggleFloor, GreenToggleWall},
		{PurpleToggleFloor, PurpleToggleWall},
		{SwitchOn, SwitchOff},
	}
	for _, p := range pairs {
		if got := p[0].Toggle(); got != p[1] {
			t.Errorf("%s.Toggle() = %s, want %s", p[0], got, p[1])
		}
		if got := p[1].Toggle(); got != p[0] {
			t.Errorf("%s.Toggle() = %s, want %s", p[1], got, p[0])
		}
	}
}

func TestToggleIsNoopForUnpairedTile(t *testing.T) {
	if got := Wall.Toggle(); got != Wall {
		t.Errorf("Wall.Toggle() = %s, want unchanged", got)
	}
}
