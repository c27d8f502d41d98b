package cc2

// Cell holds up to five optional layers, one per Category (spec.md §3). A
// cell is complete once Terrain is set; the other four slots are optional.
type Cell struct {
	Terrain    *Element
	Panel      *Element
	Mob        *Element
	NotAllowed *Element
	Pickup     *Element
}

// NewCell returns a cell with Terrain set to Floor and every other slot
// empty.
func NewCell() Cell {
	return Cell{Terrain: NewElement(Floor)}
}

// Set places el into the layer slot matching its tile's category,
// overwriting whatever was there.
func (c *Cell) Set(el *Element) {
	switch el.Category() {
	case CategoryTerrain:
		c.Terrain = el
	case CategoryPanel:
		c.Panel = el
	case CategoryMob:
		c.Mob = el
	case CategoryNotAllowed:
		c.NotAllowed = el
	case CategoryPickup:
		c.Pickup = el
	}
}

// Slot returns the element occupying cat's layer, or nil.
func (c *Cell) Slot(cat Category) *Element {
	switch cat {
	case CategoryTerrain:
		return c.Terrain
	case CategoryPanel:
		return c.Panel
	case CategoryMob:
		return c.Mob
	case CategoryNotAllowed:
		return c.NotAllowed
	case CategoryPickup:
		return c.Pickup
	}
	return nil
}

// Clear empties cat's layer slot.
func (c *Cell) Clear(cat Category) {
	switch cat {
	case CategoryTerrain:
		c.Terrain = nil
	case CategoryPanel:
		c.Panel = nil
	case CategoryMob:
		c.Mob = nil
	case CategoryNotAllowed:
		c.NotAllowed = nil
	case CategoryPickup:
		c.Pickup = nil
	}
}

// Elements returns the cell's populated layers in wire order: panel, mob,
// not_allowed, pickup, terrain (spec.md §4.8 parses terrain last).
func (c *Cell) Elements() []*Element {
	var out []*Element
	for _, el := range []*Element{c.Panel, c.Mob, c.NotAllowed, c.Pickup, c.Terrain} {
		if el != nil {
			out = append(out, el)
		}
	}
	return out
}

// IsComplete reports whether the cell has a terrain layer.
func (c *Cell) IsComplete() bool { return c.Terrain != nil }
