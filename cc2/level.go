package cc2

import "fmt"

// Level is a C2M map: a width×height grid of cells plus the textual and
// option metadata carried alongside it in a C2M file (spec.md §3, §4.7).
type Level struct {
	Width, Height int
	Cells         []Cell // row-major, length Width*Height

	Title  string
	Author string
	Clue   string
	Note   string
	Lock   string // editor lock password

	Vers       string // CC2M section: file-format version
	EditorVers string // VERS section: editor-version string

	TimeLimit       int
	EditorWindow    bool
	VerifiedReplay  bool
	HideMap         bool
	ReadOnly        bool
	ReplayHash      []byte
	HideLogic       bool
	CC1Boots        bool
	BlobPatterns    bool

	Key   []byte // encrypted map key, opaque
	Replay []byte // packed or unpacked replay bytes, opaque
	PRPL  []byte // opaque editor-private data
}

// NewLevel returns a w×h level with every cell defaulted to Floor.
func NewLevel(w, h int) *Level {
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = NewCell()
	}
	return &Level{Width: w, Height: h, Cells: cells}
}

func (l *Level) String() string {
	return fmt.Sprintf("{C2MLevel title='%s' %dx%d}", l.Title, l.Width, l.Height)
}

// At returns the cell at (x, y).
func (l *Level) At(x, y int) *Cell {
	return &l.Cells[y*l.Width+x]
}

// Wired is the set of tile codes the wire/wire-tunnel modifier applies to
// (original_source's C2MElement.Wired()).
func Wired() Set {
	return NewSet(Floor, SteelWall, Transmogrifier, BlueTeleport, RedTeleport,
		PinkButton, BlackButton, SwitchOn, SwitchOff)
}

// CustomTiles is the set of tile codes carrying a custom-color modifier.
func CustomTiles() Set {
	return NewSet(CustomFloor, CustomWall)
}

// LogicGates is the set of tile codes carrying a logic-gate modifier.
func LogicGates() Set {
	return NewSet(LogicGate)
}

// ModifiedTiles is every tile code the map encoder attaches modifier bytes
// to: the union of Wired, CustomTiles, the letter-tile space, the clone
// machine, logic gates, and the railroad track (original_source's
// c2m_map_encoder.py build_modifier dispatch).
func ModifiedTiles() Set {
	return Wired().
		Union(CustomTiles()).
		Union(NewSet(LetterTileSpace, CloneMachine)).
		Union(LogicGates()).
		Union(NewSet(RailroadTrack))
}

// Levelset is a named collection of C2M levels, analogous to cc1.Levelset
// but with the extra C2G playlist/script payload C2M level packs carry
// (spec.md §6's C2M analogue, original_source's CC2Levelset).
type Levelset struct {
	Name   string
	Levels []*Level
	C2G    []byte // opaque C2G playlist/script bytes, preserved verbatim
}

func (ls *Levelset) String() string {
	return fmt.Sprintf("{C2MLevelset '%s', %d levels}", ls.Name, len(ls.Levels))
}
