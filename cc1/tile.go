// Package cc1 implements the CC1 tile enumeration, its rotation and
// reflection algebra, and the two-layer cell/level model built on top of
// it (spec.md §3–§5). The tile table below follows the enum-table idiom
// of rep/repcore/enums.go (a slice of pointer-typed entries plus named
// package-level singletons and an ID lookup function) rather than a plain
// Go const block, because callers need both "the Nth tile" (parsing) and
// "the tile named Wall" (algebra, set membership) cheaply.
package cc1

import (
	"fmt"

	"github.com/ChipMcCallahan/CCTools/cctoolserr"
)

// Dir is one of the eight compass directions a tile name may carry as a
// suffix, or DirNone for a tile with no direction.
type Dir string

// The compass directions recognised in tile names.
const (
	DirNone Dir = ""
	DirN    Dir = "N"
	DirE    Dir = "E"
	DirS    Dir = "S"
	DirW    Dir = "W"
	DirNE   Dir = "NE"
	DirNW   Dir = "NW"
	DirSE   Dir = "SE"
	DirSW   Dir = "SW"
)

// Tile is one entry of the closed CC1 tile enumeration.
type Tile struct {
	cctoolErrEnum

	// ID is the tile's byte value as it appears in a DAT file.
	ID uint8

	// family is the tile's name with any direction suffix stripped, used
	// to look up the sibling tile after a rotation or reflection. It is a
	// literal field, not derived by splitting Name at lookup time, per
	// the precomputed-table approach spec.md §9 calls for.
	family string

	// dir is this tile's direction, or DirNone if it has none.
	dir Dir
}

// cctoolErrEnum mirrors repcore.Enum: a named base embedded into every
// richer enum struct in this module, giving it a String() method for free.
type cctoolErrEnum struct {
	Name string
}

func (e cctoolErrEnum) String() string { return e.Name }

// Dirs returns this tile's direction suffix, or "" if it has none.
func (t *Tile) Dirs() Dir { return t.dir }

func e(name string, id uint8, family string, dir Dir) *Tile {
	return &Tile{cctoolErrEnum{name}, id, family, dir}
}

// Tiles is the full, closed CC1 enumeration, indexed by tile ID (0–111).
var Tiles = []*Tile{
	e("FLOOR", 0, "FLOOR", DirNone),
	e("WALL", 1, "WALL", DirNone),
	e("CHIP", 2, "CHIP", DirNone),
	e("WATER", 3, "WATER", DirNone),
	e("FIRE", 4, "FIRE", DirNone),
	e("INV_WALL_PERM", 5, "INV_WALL_PERM", DirNone),
	e("PANEL_N", 6, "PANEL", DirN),
	e("PANEL_W", 7, "PANEL", DirW),
	e("PANEL_S", 8, "PANEL", DirS),
	e("PANEL_E", 9, "PANEL", DirE),
	e("BLOCK", 10, "BLOCK", DirNone),
	e("DIRT", 11, "DIRT", DirNone),
	e("ICE", 12, "ICE", DirNone),
	e("FORCE_S", 13, "FORCE", DirS),
	e("CLONE_BLOCK_N", 14, "CLONE_BLOCK", DirN),
	e("CLONE_BLOCK_W", 15, "CLONE_BLOCK", DirW),
	e("CLONE_BLOCK_S", 16, "CLONE_BLOCK", DirS),
	e("CLONE_BLOCK_E", 17, "CLONE_BLOCK", DirE),
	e("FORCE_N", 18, "FORCE", DirN),
	e("FORCE_E", 19, "FORCE", DirE),
	e("FORCE_W", 20, "FORCE", DirW),
	e("EXIT", 21, "EXIT", DirNone),
	e("BLUE_DOOR", 22, "BLUE_DOOR", DirNone),
	e("RED_DOOR", 23, "RED_DOOR", DirNone),
	e("GREEN_DOOR", 24, "GREEN_DOOR", DirNone),
	e("YELLOW_DOOR", 25, "YELLOW_DOOR", DirNone),
	e("ICE_SE", 26, "ICE", DirSE),
	e("ICE_SW", 27, "ICE", DirSW),
	e("ICE_NW", 28, "ICE", DirNW),
	e("ICE_NE", 29, "ICE", DirNE),
	e("BLUE_WALL_FAKE", 30, "BLUE_WALL_FAKE", DirNone),
	e("BLUE_WALL_REAL", 31, "BLUE_WALL_REAL", DirNone),
	e("NOT_USED_0", 32, "NOT_USED_0", DirNone),
	e("THIEF", 33, "THIEF", DirNone),
	e("SOCKET", 34, "SOCKET", DirNone),
	e("GREEN_BUTTON", 35, "GREEN_BUTTON", DirNone),
	e("CLONE_BUTTON", 36, "CLONE_BUTTON", DirNone),
	e("TOGGLE_WALL", 37, "TOGGLE_WALL", DirNone),
	e("TOGGLE_FLOOR", 38, "TOGGLE_FLOOR", DirNone),
	e("TRAP_BUTTON", 39, "TRAP_BUTTON", DirNone),
	e("TANK_BUTTON", 40, "TANK_BUTTON", DirNone),
	e("TELEPORT", 41, "TELEPORT", DirNone),
	e("BOMB", 42, "BOMB", DirNone),
	e("TRAP", 43, "TRAP", DirNone),
	e("INV_WALL_APP", 44, "INV_WALL_APP", DirNone),
	e("GRAVEL", 45, "GRAVEL", DirNone),
	e("POP_UP_WALL", 46, "POP_UP_WALL", DirNone),
	e("HINT", 47, "HINT", DirNone),
	e("PANEL_SE", 48, "PANEL", DirSE),
	e("CLONER", 49, "CLONER", DirNone),
	e("FORCE_RANDOM", 50, "FORCE_RANDOM", DirNone),
	e("DROWN_CHIP", 51, "DROWN_CHIP", DirNone),
	e("BURNED_CHIP0", 52, "BURNED_CHIP0", DirNone),
	e("BURNED_CHIP1", 53, "BURNED_CHIP1", DirNone),
	e("NOT_USED_1", 54, "NOT_USED_1", DirNone),
	e("NOT_USED_2", 55, "NOT_USED_2", DirNone),
	e("NOT_USED_3", 56, "NOT_USED_3", DirNone),
	e("CHIP_EXIT", 57, "CHIP_EXIT", DirNone),
	e("UNUSED_EXIT_0", 58, "UNUSED_EXIT_0", DirNone),
	e("UNUSED_EXIT_1", 59, "UNUSED_EXIT_1", DirNone),
	e("CHIP_SWIMMING_N", 60, "CHIP_SWIMMING", DirN),
	e("CHIP_SWIMMING_W", 61, "CHIP_SWIMMING", DirW),
	e("CHIP_SWIMMING_S", 62, "CHIP_SWIMMING", DirS),
	e("CHIP_SWIMMING_E", 63, "CHIP_SWIMMING", DirE),
	e("ANT_N", 64, "ANT", DirN),
	e("ANT_W", 65, "ANT", DirW),
	e("ANT_S", 66, "ANT", DirS),
	e("ANT_E", 67, "ANT", DirE),
	e("FIREBALL_N", 68, "FIREBALL", DirN),
	e("FIREBALL_W", 69, "FIREBALL", DirW),
	e("FIREBALL_S", 70, "FIREBALL", DirS),
	e("FIREBALL_E", 71, "FIREBALL", DirE),
	e("BALL_N", 72, "BALL", DirN),
	e("BALL_W", 73, "BALL", DirW),
	e("BALL_S", 74, "BALL", DirS),
	e("BALL_E", 75, "BALL", DirE),
	e("TANK_N", 76, "TANK", DirN),
	e("TANK_W", 77, "TANK", DirW),
	e("TANK_S", 78, "TANK", DirS),
	e("TANK_E", 79, "TANK", DirE),
	e("GLIDER_N", 80, "GLIDER", DirN),
	e("GLIDER_W", 81, "GLIDER", DirW),
	e("GLIDER_S", 82, "GLIDER", DirS),
	e("GLIDER_E", 83, "GLIDER", DirE),
	e("TEETH_N", 84, "TEETH", DirN),
	e("TEETH_W", 85, "TEETH", DirW),
	e("TEETH_S", 86, "TEETH", DirS),
	e("TEETH_E", 87, "TEETH", DirE),
	e("WALKER_N", 88, "WALKER", DirN),
	e("WALKER_W", 89, "WALKER", DirW),
	e("WALKER_S", 90, "WALKER", DirS),
	e("WALKER_E", 91, "WALKER", DirE),
	e("BLOB_N", 92, "BLOB", DirN),
	e("BLOB_W", 93, "BLOB", DirW),
	e("BLOB_S", 94, "BLOB", DirS),
	e("BLOB_E", 95, "BLOB", DirE),
	e("PARAMECIUM_N", 96, "PARAMECIUM", DirN),
	e("PARAMECIUM_W", 97, "PARAMECIUM", DirW),
	e("PARAMECIUM_S", 98, "PARAMECIUM", DirS),
	e("PARAMECIUM_E", 99, "PARAMECIUM", DirE),
	e("BLUE_KEY", 100, "BLUE_KEY", DirNone),
	e("RED_KEY", 101, "RED_KEY", DirNone),
	e("GREEN_KEY", 102, "GREEN_KEY", DirNone),
	e("YELLOW_KEY", 103, "YELLOW_KEY", DirNone),
	e("FLIPPERS", 104, "FLIPPERS", DirNone),
	e("FIRE_BOOTS", 105, "FIRE_BOOTS", DirNone),
	e("SKATES", 106, "SKATES", DirNone),
	e("SUCTION_BOOTS", 107, "SUCTION_BOOTS", DirNone),
	e("PLAYER_N", 108, "PLAYER", DirN),
	e("PLAYER_W", 109, "PLAYER", DirW),
	e("PLAYER_S", 110, "PLAYER", DirS),
	e("PLAYER_E", 111, "PLAYER", DirE),
}

// Named tiles, for direct reference by the algebra and set-membership code
// below (mirrors repcore's SpeedSlowest/SpeedNormal/... style, scaled to
// the full 112-entry table since this domain refers to individual tiles
// far more often than the StarCraft enums do).
var (
	Floor         = Tiles[0]
	Wall          = Tiles[1]
	Chip          = Tiles[2]
	Water         = Tiles[3]
	Fire          = Tiles[4]
	InvWallPerm   = Tiles[5]
	PanelN        = Tiles[6]
	PanelW        = Tiles[7]
	PanelS        = Tiles[8]
	PanelE        = Tiles[9]
	Block         = Tiles[10]
	Dirt          = Tiles[11]
	Ice           = Tiles[12]
	ForceS        = Tiles[13]
	CloneBlockN   = Tiles[14]
	CloneBlockW   = Tiles[15]
	CloneBlockS   = Tiles[16]
	CloneBlockE   = Tiles[17]
	ForceN        = Tiles[18]
	ForceE        = Tiles[19]
	ForceW        = Tiles[20]
	Exit          = Tiles[21]
	BlueDoor      = Tiles[22]
	RedDoor       = Tiles[23]
	GreenDoor     = Tiles[24]
	YellowDoor    = Tiles[25]
	IceSE         = Tiles[26]
	IceSW         = Tiles[27]
	IceNW         = Tiles[28]
	IceNE         = Tiles[29]
	BlueWallFake  = Tiles[30]
	BlueWallReal  = Tiles[31]
	NotUsed0      = Tiles[32]
	Thief         = Tiles[33]
	Socket        = Tiles[34]
	GreenButton   = Tiles[35]
	CloneButton   = Tiles[36]
	ToggleWall    = Tiles[37]
	ToggleFloor   = Tiles[38]
	TrapButton    = Tiles[39]
	TankButton    = Tiles[40]
	Teleport      = Tiles[41]
	Bomb          = Tiles[42]
	Trap          = Tiles[43]
	InvWallApp    = Tiles[44]
	Gravel        = Tiles[45]
	PopUpWall     = Tiles[46]
	Hint          = Tiles[47]
	PanelSE       = Tiles[48]
	Cloner        = Tiles[49]
	ForceRandom   = Tiles[50]
	DrownChip     = Tiles[51]
	BurnedChip0   = Tiles[52]
	BurnedChip1   = Tiles[53]
	NotUsed1      = Tiles[54]
	NotUsed2      = Tiles[55]
	NotUsed3      = Tiles[56]
	ChipExit      = Tiles[57]
	UnusedExit0   = Tiles[58]
	UnusedExit1   = Tiles[59]
	ChipSwimmingN = Tiles[60]
	ChipSwimmingW = Tiles[61]
	ChipSwimmingS = Tiles[62]
	ChipSwimmingE = Tiles[63]
	AntN          = Tiles[64]
	AntW          = Tiles[65]
	AntS          = Tiles[66]
	AntE          = Tiles[67]
	FireballN     = Tiles[68]
	FireballW     = Tiles[69]
	FireballS     = Tiles[70]
	FireballE     = Tiles[71]
	BallN         = Tiles[72]
	BallW         = Tiles[73]
	BallS         = Tiles[74]
	BallE         = Tiles[75]
	TankN         = Tiles[76]
	TankW         = Tiles[77]
	TankS         = Tiles[78]
	TankE         = Tiles[79]
	GliderN       = Tiles[80]
	GliderW       = Tiles[81]
	GliderS       = Tiles[82]
	GliderE       = Tiles[83]
	TeethN        = Tiles[84]
	TeethW        = Tiles[85]
	TeethS        = Tiles[86]
	TeethE        = Tiles[87]
	WalkerN       = Tiles[88]
	WalkerW       = Tiles[89]
	WalkerS       = Tiles[90]
	WalkerE       = Tiles[91]
	BlobN         = Tiles[92]
	BlobW         = Tiles[93]
	BlobS         = Tiles[94]
	BlobE         = Tiles[95]
	ParameciumN   = Tiles[96]
	ParameciumW   = Tiles[97]
	ParameciumS   = Tiles[98]
	ParameciumE   = Tiles[99]
	BlueKey       = Tiles[100]
	RedKey        = Tiles[101]
	GreenKey      = Tiles[102]
	YellowKey     = Tiles[103]
	Flippers      = Tiles[104]
	FireBoots     = Tiles[105]
	Skates        = Tiles[106]
	SuctionBoots  = Tiles[107]
	PlayerN       = Tiles[108]
	PlayerW       = Tiles[109]
	PlayerS       = Tiles[110]
	PlayerE       = Tiles[111]
)

// byFamilyDir maps (family, direction) back to the owning tile, built once
// at package init from the literal family/dir fields above.
var byFamilyDir = func() map[string]map[Dir]*Tile {
	m := make(map[string]map[Dir]*Tile, len(Tiles))
	for _, t := range Tiles {
		if m[t.family] == nil {
			m[t.family] = make(map[Dir]*Tile)
		}
		m[t.family][t.dir] = t
	}
	return m
}()

// ByID returns the Tile for a given ID. It panics with an
// cctoolserr.InvalidTileCodeError-wrapping value if ID is outside the
// closed enumeration; callers at a parse boundary recover this the same
// way repparser.parseProtected recovers sliceReader panics.
func ByID(id uint8) *Tile {
	if int(id) < len(Tiles) {
		return Tiles[id]
	}
	panic(&cctoolserr.InvalidTileCodeError{Value: int(id)})
}

// WithDirs returns the sibling tile in the same family carrying dirs, or
// an error if no such tile exists (the direction string has a different
// length than this tile's own, or no sibling was registered).
func (t *Tile) WithDirs(dirs Dir) (*Tile, error) {
	if dirs == t.dir {
		return t, nil
	}
	if len(dirs) != len(t.dir) {
		return nil, fmt.Errorf("cc1: dirs length mismatch for %s: have %q want len %d", t.Name, dirs, len(t.dir))
	}
	sibling, ok := byFamilyDir[t.family][dirs]
	if !ok {
		return nil, fmt.Errorf("cc1: no %s tile with direction %q", t.family, dirs)
	}
	return sibling, nil
}

// isFixedPoint reports whether t is exempted from rotation/reflection
// regardless of its own direction, per spec.md §4.2 ("FORCE_RANDOM, ICE,
// PANEL_SE, BLOCK are unchanged").
func (t *Tile) isFixedPoint() bool {
	return t.dir == DirNone || t == ForceRandom || t == Ice || t == PanelSE || t == Block
}
