package cc2

// Category is the cell layer slot a tile element occupies (spec.md §3,
// §4.8).
type Category int

const (
	CategoryTerrain Category = iota
	CategoryPanel
	CategoryMob
	CategoryNotAllowed
	CategoryPickup
)

var categoryByFamily = map[string]Category{
	"panel":       CategoryPanel,
	"not_allowed": CategoryNotAllowed,
}

// Category classifies t into the layer slot it occupies within a Cell.
// Mobs (monsters, blocks, players) occupy the mob slot; pickups and chips
// occupy the pickup slot; the thin-wall/canopy and not-allowed markers
// occupy their own slots; everything else is terrain.
func (t *Tile) Category() Category {
	if Mobs().Contains(t) {
		return CategoryMob
	}
	if Pickups().Contains(t) || AllChips().Contains(t) {
		return CategoryPickup
	}
	if c, ok := categoryByFamily[t.family]; ok {
		return c
	}
	return CategoryTerrain
}

// Gate is a decoded logic-gate modifier (spec.md §4.8).
type Gate struct {
	Kind string // Inverter, And, Or, Xor, LatchCW, Nand, LatchCCW, Counter, Voodoo
	Dir  Dir    // direction for directional gates; DirNone for Counter/Voodoo
	N    int    // counter value 0-9, for Kind == "Counter"
	Raw  byte   // raw byte, preserved for Kind == "Voodoo"
}

// DecodeGate interprets a single logic-gate modifier byte (spec.md §4.8).
func DecodeGate(b byte) Gate {
	dir := [4]Dir{DirN, DirE, DirS, DirW}[b&0x03]
	switch {
	case b <= 0x03:
		return Gate{Kind: "Inverter", Dir: dir}
	case b <= 0x07:
		return Gate{Kind: "And", Dir: dir}
	case b <= 0x0B:
		return Gate{Kind: "Or", Dir: dir}
	case b <= 0x0F:
		return Gate{Kind: "Xor", Dir: dir}
	case b <= 0x13:
		return Gate{Kind: "LatchCW", Dir: dir}
	case b <= 0x17:
		return Gate{Kind: "Nand", Dir: dir}
	case b >= 0x1E && b <= 0x27:
		return Gate{Kind: "Counter", N: int(b - 0x1E)}
	case b >= 0x40 && b <= 0x43:
		return Gate{Kind: "LatchCCW", Dir: dir}
	default:
		return Gate{Kind: "Voodoo", Raw: b}
	}
}

// Encode reverses DecodeGate.
func (g Gate) Encode() byte {
	dirBits := map[Dir]byte{DirN: 0, DirE: 1, DirS: 2, DirW: 3}
	switch g.Kind {
	case "Inverter":
		return 0x00 | dirBits[g.Dir]
	case "And":
		return 0x04 | dirBits[g.Dir]
	case "Or":
		return 0x08 | dirBits[g.Dir]
	case "Xor":
		return 0x0C | dirBits[g.Dir]
	case "LatchCW":
		return 0x10 | dirBits[g.Dir]
	case "Nand":
		return 0x14 | dirBits[g.Dir]
	case "Counter":
		return 0x1E + byte(g.N)
	case "LatchCCW":
		return 0x40 | dirBits[g.Dir]
	default:
		return g.Raw
	}
}

// Track bitmask values for the railroad-track modifier (spec.md §4.8).
const (
	TrackNE = 1 << iota
	TrackSE
	TrackSW
	TrackNW
	TrackHorizontal
	TrackVertical
	TrackSwitch
)

// activeTrackBit maps the active-track field index to its bit.
var activeTrackBit = []int{TrackNE, TrackSE, TrackSW, TrackNW, TrackHorizontal, TrackVertical}

// Element is one tile occupying a cell layer, plus whatever modifier data
// the wire format attaches to it (spec.md §3, §4.8).
type Element struct {
	Tile *Tile
	Dir  Dir // mob facing, or DirNone

	Wires       uint8 // bitmask N=1 E=2 S=4 W=8
	WireTunnels uint8 // same bit layout, upper-nibble in the wire byte

	Char byte // LETTER_TILE_SPACE glyph; 0 = no character

	CloneDirs uint8 // 4-bit direction set for a clone machine's allowed exits

	CustomColor int // 0=Green 1=Pink 2=Yellow 3=Blue, for CUSTOM_FLOOR/CUSTOM_WALL

	Gate *Gate

	Tracks       uint8 // bitmask of TrackNE.. TrackSwitch
	ActiveTrack  int   // bit value from activeTrackBit, or 0 if unset
	InitialEntry Dir

	ThinWallMask uint8 // N=1 E=2 S=4 W=8 C=0x10, for THIN_WALL_CANOPY
	ArrowMask    uint8 // N=1 E=2 S=4 W=8, for DIRECTIONAL_BLOCK
}

// NewElement wraps a bare tile with no modifier data.
func NewElement(t *Tile) *Element { return &Element{Tile: t} }

// Category delegates to the wrapped tile.
func (el *Element) Category() Category { return el.Tile.Category() }
