package cc1

import "testing"

func TestRightRotatesCompass(t *testing.T) {
	cases := []struct{ from, want *Tile }{
		{ForceN, ForceE},
		{ForceE, ForceS},
		{ForceS, ForceW},
		{ForceW, ForceN},
		{PanelN, PanelE},
		{PanelE, PanelS},
		{PanelS, PanelW},
		{PanelW, PanelN},
	}
	for _, c := range cases {
		if got := c.from.Right(); got != c.want {
			t.Errorf("%s.Right() = %s, want %s", c.from, got, c.want)
		}
	}
}

func TestRightBuildsCompoundInReverseOrder(t *testing.T) {
	if got := IceNE.Right(); got != IceSE {
		t.Errorf("IceNE.Right() = %s, want %s", got, IceSE)
	}
	if got := IceSE.Right(); got != IceSW {
		t.Errorf("IceSE.Right() = %s, want %s", got, IceSW)
	}
}

func TestRotationClosure(t *testing.T) {
	for _, tile := range Tiles {
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

func TestFixedPointsUnchangedByRotation(t *testing.T) {
	for _, tile := range []*Tile{ForceRandom, Ice, PanelSE, Block, Floor, Wall} {
		if got := tile.Right(); got != tile {
			t.Errorf("%s.Right() = %s, want unchanged", tile, got)
		}
	}
}

func TestFlipsAreInvolutions(t *testing.T) {
	flips := []func(*Tile) *Tile{
		(*Tile).FlipHorizontal,
		(*Tile).FlipVertical,
		(*Tile).FlipNESW,
		(*Tile).FlipNWSE,
	}
	for _, flip := range flips {
		for _, tile := range Tiles {
			once := flip(tile)
			twice := flip(once)
			if twice != tile {
				t.Errorf("flip is not an involution for %s: got %s after twice", tile, twice)
			}
		}
	}
}

func TestFlipHorizontalSwapsEastWest(t *testing.T) {
	if got := ForceE.FlipHorizontal(); got != ForceW {
		t.Errorf("ForceE.FlipHorizontal() = %s, want %s", got, ForceW)
	}
	if got := IceNE.FlipHorizontal(); got != IceNW {
		t.Errorf("IceNE.FlipHorizontal() = %s, want %s", got, IceNW)
	}
}
