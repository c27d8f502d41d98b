package cc1

// Set is an unordered collection of tiles, the Go counterpart to the
// Python classmethods returning a `set` of CC1 members.
type Set map[*Tile]struct{}

// NewSet builds a Set from a list of tiles.
func NewSet(tiles ...*Tile) Set {
	s := make(Set, len(tiles))
	for _, t := range tiles {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether t is a member of s.
func (s Set) Contains(t *Tile) bool {
	_, ok := s[t]
	return ok
}

// Union returns the set of tiles in s or other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Difference returns the tiles in s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set, len(s))
	for t := range s {
		if !other.Contains(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

func compass(family string) Set {
	return NewSet(
		byFamilyDir[family][DirN],
		byFamilyDir[family][DirE],
		byFamilyDir[family][DirS],
		byFamilyDir[family][DirW],
	)
}

// All returns every tile in the closed CC1 enumeration.
func All() Set {
	s := make(Set, len(Tiles))
	for _, t := range Tiles {
		s[t] = struct{}{}
	}
	return s
}

// Invalid returns the 14 tile codes that must never appear in a valid level.
func Invalid() Set {
	return NewSet(
		NotUsed0, DrownChip, BurnedChip0, BurnedChip1,
		NotUsed1, NotUsed2, NotUsed3, ChipExit,
		UnusedExit0, UnusedExit1,
		ChipSwimmingN, ChipSwimmingE, ChipSwimmingS, ChipSwimmingW,
	)
}

// Valid returns every tile not in Invalid.
func Valid() Set {
	return All().Difference(Invalid())
}

// IceTiles returns the ice and ice-corner tiles.
func IceTiles() Set {
	return NewSet(Ice, IceNE, IceNW, IceSE, IceSW)
}

// Forces returns the force-floor tiles.
func Forces() Set {
	return compass("FORCE").Union(NewSet(ForceRandom))
}

// Walls returns the wall tiles.
func Walls() Set {
	return NewSet(Wall, InvWallPerm, InvWallApp, BlueWallReal)
}

// Panels returns the panel (thin-wall) tiles.
func Panels() Set {
	return compass("PANEL").Union(NewSet(PanelSE))
}

// CloneBlocks returns the clone-block tiles.
func CloneBlocks() Set {
	return compass("CLONE_BLOCK")
}

// Blocks returns the clone-block tiles plus the plain block.
func Blocks() Set {
	return CloneBlocks().Union(NewSet(Block))
}

// Players returns the player tiles.
func Players() Set {
	return compass("PLAYER")
}

// Ants returns the ant tiles.
func Ants() Set { return compass("ANT") }

// Paramecia returns the paramecium tiles.
func Paramecia() Set { return compass("PARAMECIUM") }

// Gliders returns the glider tiles.
func Gliders() Set { return compass("GLIDER") }

// Fireballs returns the fireball tiles.
func Fireballs() Set { return compass("FIREBALL") }

// Tanks returns the tank tiles.
func Tanks() Set { return compass("TANK") }

// Balls returns the ball tiles.
func Balls() Set { return compass("BALL") }

// Walkers returns the walker tiles.
func Walkers() Set { return compass("WALKER") }

// Teeth returns the teeth tiles.
func Teeth() Set { return compass("TEETH") }

// Blobs returns the blob tiles.
func Blobs() Set { return compass("BLOB") }

// Monsters returns the union of all nine monster families.
func Monsters() Set {
	return Gliders().Union(Ants()).Union(Paramecia()).Union(Fireballs()).
		Union(Teeth()).Union(Tanks()).Union(Blobs()).Union(Walkers()).Union(Balls())
}

// Mobs returns monsters, blocks, and players.
func Mobs() Set {
	return Monsters().Union(Blocks()).Union(Players())
}

// Nonmobs returns every tile that is not a mob.
func Nonmobs() Set {
	return All().Difference(Mobs())
}

// Doors returns the four colored doors.
func Doors() Set {
	return NewSet(RedDoor, GreenDoor, YellowDoor, BlueDoor)
}

// Keys returns the four colored keys.
func Keys() Set {
	return NewSet(RedKey, GreenKey, YellowKey, BlueKey)
}

// Boots returns the four boot/flipper pickups.
func Boots() Set {
	return NewSet(Skates, SuctionBoots, FireBoots, Flippers)
}

// Pickups returns boots, keys, and chip.
func Pickups() Set {
	return Boots().Union(Keys()).Union(NewSet(Chip))
}

// Buttons returns the four button tiles.
func Buttons() Set {
	return NewSet(GreenButton, TrapButton, CloneButton, TankButton)
}

// Toggles returns the toggle wall/floor pair.
func Toggles() Set {
	return NewSet(ToggleWall, ToggleFloor)
}
