package cc1

// Cell holds two tile layers: Top and Bottom, defaulting to Floor.
// Bottom is only meaningful when Top is a mob riding on terrain
// (spec.md §3 CC1 Cell).
type Cell struct {
	Top, Bottom *Tile
}

// NewCell returns a cell with both layers set to Floor.
func NewCell() Cell {
	return Cell{Top: Floor, Bottom: Floor}
}

// IsValid reports whether the cell violates none of the invariants in
// spec.md §3: bottom non-floor only under a mob, neither layer invalid,
// bottom never a mob.
func (c Cell) IsValid() bool {
	mobs := Mobs()
	buried := !mobs.Contains(c.Top) && c.Bottom != Floor
	invalidCode := Invalid().Contains(c.Top) || Invalid().Contains(c.Bottom)
	buriedMob := mobs.Contains(c.Bottom)
	return !(buried || invalidCode || buriedMob)
}

// Contains reports whether elem occupies either layer.
func (c Cell) Contains(elem *Tile) bool {
	return c.Top == elem || c.Bottom == elem
}

// Add places elem on the cell, maintaining validity per spec.md §4.3.
func (c *Cell) Add(elem *Tile) {
	mobs := Mobs()
	isMob := mobs.Contains(elem)
	mobHere := mobs.Contains(c.Top)
	switch {
	case isMob && !mobHere:
		c.Bottom = c.Top
		c.Top = elem
	case !isMob && mobHere:
		c.Bottom = elem
	default:
		c.Top = elem
	}
}

// Remove removes elem from the cell, per spec.md §4.3. It reports whether
// the cell was altered.
func (c *Cell) Remove(elem *Tile) bool {
	switch {
	case elem == Floor:
		return false
	case elem == c.Top:
		c.Top, c.Bottom = c.Bottom, Floor
		return true
	case elem == c.Bottom:
		c.Bottom = Floor
		return true
	default:
		return false
	}
}

// Erase resets both layers to Floor.
func (c *Cell) Erase() {
	c.Top, c.Bottom = Floor, Floor
}
