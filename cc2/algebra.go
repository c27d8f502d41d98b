package cc2

var clockwise = map[Dir]Dir{DirN: DirE, DirE: DirS, DirS: DirW, DirW: DirN}

// compoundParts maps each compound direction to its two single-letter parts
// in name order (e.g. DirNE -> N, E); simple directions have no entry.
var compoundParts = map[Dir][2]Dir{
	DirNE: {DirN, DirE},
	DirNW: {DirN, DirW},
	DirSE: {DirS, DirE},
	DirSW: {DirS, DirW},
}

var fromParts = map[[2]Dir]Dir{
	{DirN, DirE}: DirNE, {DirN, DirW}: DirNW,
	{DirS, DirE}: DirSE, {DirS, DirW}: DirSW,
}

func parts(d Dir) []Dir {
	if p, ok := compoundParts[d]; ok {
		return []Dir{p[0], p[1]}
	}
	if d == DirNone {
		return nil
	}
	return []Dir{d}
}

func fromSingles(ds []Dir) Dir {
	switch len(ds) {
	case 0:
		return DirNone
	case 1:
		return ds[0]
	case 2:
		return fromParts[[2]Dir{ds[0], ds[1]}]
	}
	panic("cc2: invalid direction composition")
}

// withDirs finds the tile sharing t's family and ID range whose compound
// direction is built from ds, by reconstructing the name the way
// with_dirs() builds one in the source: same base name, new suffix.
func (t *Tile) withDirs(ds []Dir) *Tile {
	d := fromSingles(ds)
	if d == t.dir {
		return t
	}
	base := t.Name[:len(t.Name)-len(dirNames[t.dir])]
	if t.dir == DirNone {
		base = t.Name
	}
	name := base + dirNames[d]
	got, ok := byName[name]
	if !ok {
		panic("cc2: no tile named " + name)
	}
	return got
}

// Right rotates t's direction suffix 90° clockwise, building compound
// suffixes in reverse order the same way cc1 does (spec.md §4.2's
// analogous rule, extended to the CC2 hardcoded-direction set).
func (t *Tile) Right() *Tile {
	if !ValuesWithHardcodedDirections().Contains(t) {
		return t
	}
	old := parts(t.dir)
	newParts := make([]Dir, len(old))
	for i, d := range old {
		newParts[len(old)-1-i] = clockwise[d]
	}
	return t.withDirs(newParts)
}

// Reverse rotates 180°.
func (t *Tile) Reverse() *Tile { return t.Right().Right() }

// Left rotates 90° counter-clockwise.
func (t *Tile) Left() *Tile { return t.Right().Right().Right() }

// Toggle returns the state-paired tile if t participates in one of the
// five CC2 toggle relations (spec.md §3), otherwise t unchanged.
func (t *Tile) Toggle() *Tile {
	pairs := [][2]*Tile{
		{GreenChip, GreenBomb},
		{FlameJetOn, FlameJetOff},
		{GreenToggleFloor, GreenToggleWall},
		{PurpleToggleFloor, PurpleToggleWall},
		{SwitchOn, SwitchOff},
	}
	for _, p := range pairs {
		switch t {
		case p[0]:
			return p[1]
		case p[1]:
			return p[0]
		}
	}
	return t
}
