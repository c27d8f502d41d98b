package cc1

// clockwise is the circular buffer rotation table walks around; it is the
// table spec.md §9 asks for in place of the source's reflective N/E/S/W
// string slicing.
var clockwise = map[Dir]Dir{DirN: DirE, DirE: DirS, DirS: DirW, DirW: DirN}

// Right rotates t's direction(s) 90° clockwise. Compound suffixes are
// rebuilt in reverse order, so NE rotates to SE rather than ES, per
// spec.md §4.2.
func (t *Tile) Right() *Tile {
	if t.isFixedPoint() {
		return t
	}
	newDirs := ""
	for _, d := range string(t.dir) {
		newDirs = string(clockwise[Dir(d)]) + newDirs
	}
	sibling, err := t.WithDirs(Dir(newDirs))
	if err != nil {
		return t
	}
	return sibling
}

// Reverse rotates t's direction(s) 180°.
func (t *Tile) Reverse() *Tile {
	return t.Right().Right()
}

// Left rotates t's direction(s) 90° counter-clockwise.
func (t *Tile) Left() *Tile {
	return t.Right().Right().Right()
}

var (
	flipHorizontalMap = map[Dir]Dir{
		DirN: DirN, DirS: DirS, DirE: DirW, DirW: DirE,
		DirNE: DirNW, DirNW: DirNE, DirSE: DirSW, DirSW: DirSE,
	}
	flipVerticalMap = map[Dir]Dir{
		DirN: DirS, DirS: DirN, DirE: DirE, DirW: DirW,
		DirNE: DirSE, DirSE: DirNE, DirNW: DirSW, DirSW: DirNW,
	}
	flipNESWMap = map[Dir]Dir{
		DirN: DirE, DirE: DirN, DirS: DirW, DirW: DirS,
		DirNE: DirNE, DirSW: DirSW, DirNW: DirSE, DirSE: DirNW,
	}
	flipNWSEMap = map[Dir]Dir{
		DirN: DirW, DirW: DirN, DirS: DirE, DirE: DirS,
		DirNW: DirNW, DirSE: DirSE, DirNE: DirSW, DirSW: DirNE,
	}
)

func (t *Tile) flip(table map[Dir]Dir) *Tile {
	if t.isFixedPoint() {
		return t
	}
	sibling, err := t.WithDirs(table[t.dir])
	if err != nil {
		return t
	}
	return sibling
}

// FlipHorizontal mirrors t across a vertical axis: E↔W, NE↔NW, SE↔SW.
func (t *Tile) FlipHorizontal() *Tile { return t.flip(flipHorizontalMap) }

// FlipVertical mirrors t across a horizontal axis: N↔S, NE↔SE, NW↔SW.
func (t *Tile) FlipVertical() *Tile { return t.flip(flipVerticalMap) }

// FlipNESW mirrors t across the NE-SW diagonal.
func (t *Tile) FlipNESW() *Tile { return t.flip(flipNESWMap) }

// FlipNWSE mirrors t across the NW-SE diagonal.
func (t *Tile) FlipNWSE() *Tile { return t.flip(flipNWSEMap) }
