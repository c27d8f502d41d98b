package cc1

// TransformType enumerates the dihedral operations a Level may undergo
// (spec.md §4.5).
type TransformType int

const (
	R90 TransformType = iota + 1
	R180
	R270
	FlipHorizontal
	FlipVertical
	FlipNESW
	FlipNWSE
)

var xyTransform = map[TransformType]func(x, y int) (int, int){
	R90:            func(x, y int) (int, int) { return GridSize - 1 - y, x },
	R180:           func(x, y int) (int, int) { return GridSize - 1 - x, GridSize - 1 - y },
	R270:           func(x, y int) (int, int) { return y, GridSize - 1 - x },
	FlipVertical:   func(x, y int) (int, int) { return x, GridSize - 1 - y },
	FlipHorizontal: func(x, y int) (int, int) { return GridSize - 1 - x, y },
	FlipNESW:       func(x, y int) (int, int) { return GridSize - 1 - y, GridSize - 1 - x },
	FlipNWSE:       func(x, y int) (int, int) { return y, x },
}

var elemTransform = map[TransformType]func(*Tile) *Tile{
	R90:            (*Tile).Right,
	R180:           (*Tile).Reverse,
	R270:           (*Tile).Left,
	FlipVertical:   (*Tile).FlipVertical,
	FlipHorizontal: (*Tile).FlipHorizontal,
	FlipNESW:       (*Tile).FlipNESW,
	FlipNWSE:       (*Tile).FlipNWSE,
}

func transformPos(pos int, t TransformType) int {
	x, y := pos%GridSize, pos/GridSize
	nx, ny := xyTransform[t](x, y)
	return ny*GridSize + nx
}

// transform produces a deep copy of level with the dihedral operation t
// applied, unless the level contains PanelSE, in which case an unchanged
// copy is returned (spec.md §4.5 step 1).
func transform(level *Level, t TransformType) *Level {
	out := level.Clone()
	if level.Count(PanelSE) > 0 {
		return out
	}

	elemFn := elemTransform[t]
	for p := 0; p < GridSize*GridSize; p++ {
		newP := transformPos(p, t)
		cell := level.Map[p]
		out.Map[newP] = Cell{Top: elemFn(cell.Top), Bottom: elemFn(cell.Bottom)}
	}

	out.Traps = make(Wiring, 0, len(level.Traps))
	out.Cloners = make(Wiring, 0, len(level.Cloners))
	out.Movement = nil
	for _, w := range level.Traps {
		out.Traps = append(out.Traps, Wire{Button: transformPos(w.Button, t), Target: transformPos(w.Target, t)})
	}
	for _, w := range level.Cloners {
		out.Cloners = append(out.Cloners, Wire{Button: transformPos(w.Button, t), Target: transformPos(w.Target, t)})
	}
	for _, p := range level.Movement {
		out.Movement = append(out.Movement, transformPos(p, t))
	}
	return out
}

// Rotate90 rotates the level 90° clockwise, bailing out unchanged if it
// contains PanelSE.
func Rotate90(level *Level) *Level { return transform(level, R90) }

// Rotate180 rotates the level 180°.
func Rotate180(level *Level) *Level { return transform(level, R180) }

// Rotate270 rotates the level 270° clockwise (90° counter-clockwise).
func Rotate270(level *Level) *Level { return transform(level, R270) }

// FlipH mirrors the level across a vertical axis.
func FlipH(level *Level) *Level { return transform(level, FlipHorizontal) }

// FlipV mirrors the level across a horizontal axis.
func FlipV(level *Level) *Level { return transform(level, FlipVertical) }

// FlipNeSw mirrors the level across the NE-SW diagonal.
func FlipNeSw(level *Level) *Level { return transform(level, FlipNESW) }

// FlipNwSe mirrors the level across the NW-SE diagonal.
func FlipNwSe(level *Level) *Level { return transform(level, FlipNWSE) }

// Replace substitutes every occurrence of any tile in old (either layer)
// with new, across a fresh copy of level. Floor in old is interpreted
// specially: it replaces any empty slot (spec.md §4.5).
func Replace(level *Level, old Set, new *Tile) *Level {
	out := level.Clone()
	for p := 0; p < GridSize*GridSize; p++ {
		here := &out.Map[p]
		for elem := range old {
			switch {
			case here.Remove(elem):
				here.Add(new)
			case elem == Floor:
				mobAtTop := Mobs().Contains(here.Top)
				if here.Top == Floor || (mobAtTop && here.Bottom == Floor) {
					here.Add(new)
				}
			}
		}
	}
	return out
}

// ReplaceMobs replaces mobs in old with their same-direction counterpart
// in new, preserving direction (spec.md §4.5).
func ReplaceMobs(level *Level, old, new Set) *Level {
	for _, d := range []Dir{DirN, DirE, DirS, DirW} {
		targets := make(Set)
		for mob := range old {
			if mob.dir == d {
				targets[mob] = struct{}{}
			}
		}
		var replacement *Tile
		count := 0
		for mob := range new {
			if mob.dir == d {
				replacement = mob
				count++
			}
		}
		if count != 1 {
			panic("cc1: ReplaceMobs requires exactly one replacement per direction")
		}
		level = Replace(level, targets, replacement)
	}
	return level
}

// Keep erases every tile not present in keep, across a fresh copy of level.
func Keep(level *Level, keep Set) *Level {
	out := level.Clone()
	for p := 0; p < GridSize*GridSize; p++ {
		here := &out.Map[p]
		present := NewSet(here.Top, here.Bottom)
		for item := range present {
			if !keep.Contains(item) {
				here.Remove(item)
			}
		}
	}
	return out
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	out := &Level{
		Title:    l.Title,
		Hint:     l.Hint,
		Password: l.Password,
		Author:   l.Author,
		Time:     l.Time,
		Chips:    l.Chips,
		Map:      make([]Cell, len(l.Map)),
		Traps:    append(Wiring(nil), l.Traps...),
		Cloners:  append(Wiring(nil), l.Cloners...),
		Movement: append([]int(nil), l.Movement...),
	}
	copy(out.Map, l.Map)
	return out
}
