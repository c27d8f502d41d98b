package cc1

import (
	"fmt"

	"github.com/icza/gox/gox"
)

// GridSize is the fixed CC1 level dimension (32×32).
const GridSize = 32

// MovementCap is the maximum number of entries the original game engine
// allows in a level's movement list (spec.md §3, §9).
const MovementCap = 127

// Point is an (x, y) grid coordinate.
type Point struct {
	X, Y int
}

// Index converts p to the linear index used by Level.Map (y*32+x).
func (p Point) Index() int {
	return p.Y*GridSize + p.X
}

// PointAt converts a linear index back into a Point.
func PointAt(index int) Point {
	return Point{X: index % GridSize, Y: index / GridSize}
}

// Wire is one button→target connection in a Wiring.
type Wire struct {
	Button, Target int
}

// Wiring is an ordered button→target mapping (spec.md's "trap wiring" and
// "clone wiring"). It is a slice rather than a Go map because DAT byte
// round trips depend on reproducing the original connection order, the
// same way a Python dict (insertion-ordered since 3.7) does in the source.
type Wiring []Wire

// Get returns the target wired to button and whether one exists.
func (w Wiring) Get(button int) (int, bool) {
	for _, c := range w {
		if c.Button == button {
			return c.Target, true
		}
	}
	return 0, false
}

// Set wires button to target, updating an existing entry in place or
// appending a new one, preserving prior order.
func (w *Wiring) Set(button, target int) {
	for i, c := range *w {
		if c.Button == button {
			(*w)[i].Target = target
			return
		}
	}
	*w = append(*w, Wire{Button: button, Target: target})
}

// DeleteButton removes the wire whose Button matches pos, if any.
func (w *Wiring) DeleteButton(pos int) {
	for i, c := range *w {
		if c.Button == pos {
			*w = append((*w)[:i], (*w)[i+1:]...)
			return
		}
	}
}

// DeleteTarget removes every wire whose Target matches pos.
func (w *Wiring) DeleteTarget(pos int) {
	out := (*w)[:0]
	for _, c := range *w {
		if c.Target != pos {
			out = append(out, c)
		}
	}
	*w = out
}

// Level is a 32×32 CC1 level: a cell grid plus its metadata (spec.md §3).
type Level struct {
	Title    string
	Hint     string
	Password string
	Author   string
	Time     int
	Chips    int

	Map []Cell // length GridSize*GridSize, indexed by y*32+x

	// Traps wires each trap-button position to the trap it controls.
	Traps Wiring
	// Cloners wires each clone-button position to the cloner it controls.
	Cloners Wiring
	// Movement is the ordered sequence of monster positions, length ≤ MovementCap.
	Movement []int
}

// NewLevel returns an empty, untitled 32×32 level with every cell defaulted
// to Floor/Floor.
func NewLevel() *Level {
	m := make([]Cell, GridSize*GridSize)
	for i := range m {
		m[i] = NewCell()
	}
	return &Level{
		Title: "Untitled",
		Map:   m,
	}
}

func (l *Level) String() string {
	return fmt.Sprintf("{CC1Level title='%s'}", l.Title)
}

// At returns the cell at pos (a linear index or a Point).
func (l *Level) At(pos any) *Cell {
	return &l.Map[normalizePosition(pos)]
}

// IsValid reports whether every cell in the level is valid.
func (l *Level) IsValid() bool {
	for _, c := range l.Map {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// Connect wires a trap or clone button to its target if pos1 and pos2 hold
// the matching button/target pair, inferring source→target from which
// cell holds the button (spec.md §4.4). It reports whether a connection
// was made.
func (l *Level) Connect(pos1, pos2 any) bool {
	p1, p2 := normalizePosition(pos1), normalizePosition(pos2)
	c1, c2 := l.At(p1), l.At(p2)
	e1 := topOrBottomNonMob(c1)
	e2 := topOrBottomNonMob(c2)

	switch {
	case isPair(e1, e2, TrapButton, Trap):
		source := gox.If(e1 == Trap, p2, p1)
		dest := gox.If(e1 == Trap, p1, p2)
		l.Traps.Set(source, dest)
		return true
	case isPair(e1, e2, CloneButton, Cloner):
		source := gox.If(e1 == Cloner, p2, p1)
		dest := gox.If(e1 == Cloner, p1, p2)
		l.Cloners.Set(source, dest)
		return true
	}
	return false
}

func topOrBottomNonMob(c *Cell) *Tile {
	if Nonmobs().Contains(c.Top) {
		return c.Top
	}
	return c.Bottom
}

func isPair(e1, e2, a, b *Tile) bool {
	return (e1 == a && e2 == b) || (e1 == b && e2 == a)
}

// Add places elem at pos, maintaining validity and reconciling movement,
// trap, and cloner metadata (spec.md §4.4).
func (l *Level) Add(pos any, elem *Tile) {
	idx := normalizePosition(pos)
	cell := &l.Map[idx]
	old := *cell
	wasMonster := Monsters().Contains(cell.Top)
	cell.Add(elem)
	isMonster := Monsters().Contains(cell.Top)

	if wasMonster && !isMonster {
		l.removeMovement(idx)
	}
	if isMonster && !wasMonster && len(l.Movement) < MovementCap {
		l.Movement = append(l.Movement, idx)
	}

	for _, code := range [...]*Tile{Trap, TrapButton, Cloner, CloneButton} {
		if old.Contains(code) && !cell.Contains(code) {
			l.updateControls(idx, code)
		}
	}
}

// Remove removes elem from pos, maintaining validity and reconciling
// movement, trap, and cloner metadata (spec.md §4.4).
func (l *Level) Remove(pos any, elem *Tile) {
	idx := normalizePosition(pos)
	removed := l.Map[idx].Remove(elem)
	if removed {
		if Monsters().Contains(elem) {
			l.removeMovement(idx)
		}
		l.updateControls(idx, elem)
	}
}

// Count counts occurrences of elems across the level. Stacked layers in
// the same cell are counted independently.
func (l *Level) Count(elems ...*Tile) int {
	set := NewSet(elems...)
	count := 0
	for _, c := range l.Map {
		if set.Contains(c.Top) {
			count++
		}
		if set.Contains(c.Bottom) {
			count++
		}
	}
	return count
}

func (l *Level) removeMovement(pos int) {
	for i, p := range l.Movement {
		if p == pos {
			l.Movement = append(l.Movement[:i], l.Movement[i+1:]...)
			return
		}
	}
}

func (l *Level) updateControls(pos int, elem *Tile) {
	switch elem {
	case Trap:
		l.Traps.DeleteTarget(pos)
	case TrapButton:
		l.Traps.DeleteButton(pos)
	case Cloner:
		l.Cloners.DeleteTarget(pos)
	case CloneButton:
		l.Cloners.DeleteButton(pos)
	}
}

func normalizePosition(p any) int {
	switch v := p.(type) {
	case int:
		return v
	case Point:
		return v.Index()
	default:
		panic(fmt.Sprintf("cc1: invalid position %v", p))
	}
}

// Levelset is a named collection of CC1 levels (spec.md §6,
// original_source's CC1Levelset).
type Levelset struct {
	Levels []*Level
}

func (ls *Levelset) String() string {
	return fmt.Sprintf("{CC1Levelset, %d levels}", len(ls.Levels))
}
