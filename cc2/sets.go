package cc2

// Set is an unordered collection of CC2 tiles, mirroring cc1.Set.
type Set map[*Tile]struct{}

// NewSet builds a Set from the given tiles.
func NewSet(tiles ...*Tile) Set {
	s := make(Set, len(tiles))
	for _, t := range tiles {
		s[t] = struct{}{}
	}
	return s
}

func (s Set) Contains(t *Tile) bool {
	_, ok := s[t]
	return ok
}

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

func (s Set) Difference(other Set) Set {
	out := make(Set, len(s))
	for t := range s {
		if !other.Contains(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

func byFamily(families ...string) Set {
	want := make(map[string]struct{}, len(families))
	for _, f := range families {
		want[f] = struct{}{}
	}
	out := make(Set)
	for _, t := range Tiles {
		if _, ok := want[t.family]; ok {
			out[t] = struct{}{}
		}
	}
	return out
}

// Ice returns ICE and its four corner variants.
func Ice() Set { return NewSet(IceFloor, IceNE, IceNW, IceSE, IceSW) }

// Forces returns the four directional force floors plus FORCE_RANDOM.
func Forces() Set { return byFamily("force") }

// Swivels returns the four swivel-door corner tiles.
func Swivels() Set { return byFamily("swivel") }

// ValuesWithHardcodedDirections is the set of tiles whose direction suffix
// is rotated/reflected mechanically (spec.md §4.2's analogue for CC2):
// ice corners and directional force floors and swivels, excluding the two
// directionless special cases FORCE_RANDOM and ICE itself.
func ValuesWithHardcodedDirections() Set {
	return Ice().Union(Forces()).Union(Swivels()).Difference(NewSet(ForceRandom, IceFloor))
}

// Walls returns the solid wall family (spec.md's walls()).
func Walls() Set {
	return NewSet(Wall, SteelWall, SolidGreenWall, SolidBlueWall).Union(InvisibleWalls())
}

// Panels returns the CC1-legacy thin-wall/canopy tiles.
func Panels() Set { return byFamily("panel") }

// Blocks returns the three movable block tiles.
func Blocks() Set { return byFamily("block") }

// Monsters returns the non-block, non-player creatures.
func Monsters() Set { return byFamily("monster") }

// Mobs returns monsters, blocks, and players.
func Mobs() Set { return Monsters().Union(Blocks()).Union(Players()) }

// ToggleChips returns {GREEN_CHIP, GREEN_BOMB}.
func ToggleChips() Set { return NewSet(GreenChip, GreenBomb) }

// ICChips returns {IC_CHIP, EXTRA_IC_CHIP}.
func ICChips() Set { return NewSet(ICChip, ExtraICChip) }

// AllChips returns toggle chips union IC chips.
func AllChips() Set { return ToggleChips().Union(ICChips()) }

// Doors returns the four colored doors.
func Doors() Set { return byFamily("door") }

// Keys returns the four colored keys.
func Keys() Set { return byFamily("key") }

// Tools returns the boot/tool item family.
func Tools() Set { return byFamily("tool") }

// Flags returns the four scoring flags.
func Flags() Set { return byFamily("flag") }

// TimePickups returns the time-affecting pickups.
func TimePickups() Set { return byFamily("time_pickup") }

// Bombs returns {GREEN_BOMB, BOMB}.
func Bombs() Set { return NewSet(GreenBomb, Bomb) }

// Pickups returns keys, tools, flags, time pickups, and bombs.
func Pickups() Set {
	return Keys().Union(Tools()).Union(Flags()).Union(TimePickups()).Union(Bombs())
}

// BlueWalls returns the fake/solid blue wall pair.
func BlueWalls() Set { return NewSet(FalseBlueWall, SolidBlueWall) }

// GreenWalls returns the fake/solid green wall pair.
func GreenWalls() Set { return NewSet(FalseGreenWall, SolidGreenWall) }

// InvisibleWalls returns the invisible/appearing wall pair.
func InvisibleWalls() Set { return NewSet(InvisibleWall, AppearingWall) }

// MysteryWalls unions blue, green, and invisible walls.
func MysteryWalls() Set { return BlueWalls().Union(GreenWalls()).Union(InvisibleWalls()) }

// Switches returns the on/off switch pair.
func Switches() Set { return NewSet(SwitchOn, SwitchOff) }

// Buttons returns every button tile (including the yellow-tank button).
func Buttons() Set { return byFamily("button") }

// ButtonsAndSwitches unions buttons and switches.
func ButtonsAndSwitches() Set { return Buttons().Union(Switches()) }

// PurpleToggles returns the purple floor/wall toggle pair.
func PurpleToggles() Set { return NewSet(PurpleToggleFloor, PurpleToggleWall) }

// GreenToggles returns the green floor/wall toggle pair.
func GreenToggles() Set { return NewSet(GreenToggleFloor, GreenToggleWall) }

// FlameJets returns the on/off flame jet pair.
func FlameJets() Set { return NewSet(FlameJetOn, FlameJetOff) }

// Toggles unions purple and green toggle pairs.
func Toggles() Set { return PurpleToggles().Union(GreenToggles()) }

// ValuesWithHardcodedStates is every tile participating in a Toggle() pair
// (spec.md §3's state-toggle relation).
func ValuesWithHardcodedStates() Set {
	return Switches().Union(Toggles()).Union(FlameJets()).Union(ToggleChips())
}

// Teleports returns the four teleport colors.
func Teleports() Set { return byFamily("teleport") }

// Players returns {CHIP, MELINDA}.
func Players() Set { return byFamily("player") }

// Mirrors returns {MIRROR_CHIP, MIRROR_MELINDA}.
func Mirrors() Set { return NewSet(MirrorChip, MirrorMelinda) }

// Tanks returns {BLUE_TANK, YELLOW_TANK}.
func Tanks() Set { return NewSet(BlueTank, YellowTank) }

// Thieves returns {KEY_THIEF, TOOL_THIEF}.
func Thieves() Set { return NewSet(KeyThief, ToolThief) }

// GenderSigns returns {MALE_ONLY_SIGN, FEMALE_ONLY_SIGN}.
func GenderSigns() Set { return NewSet(MaleOnlySign, FemaleOnlySign) }

// Unused returns every placeholder tile.
func Unused() Set { return byFamily("unused") }

// InvalidMobs returns tiles that never legally appear as a parsed mob.
func InvalidMobs() Set { return byFamily("invalid_mob") }

// AllMobs unions Mobs and InvalidMobs.
func AllMobs() Set { return Mobs().Union(InvalidMobs()) }

// Modifiers returns the three modifier-tile wrappers.
func Modifiers() Set { return byFamily("modifier") }
