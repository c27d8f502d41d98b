// Package cc2 implements the CC2 tile enumeration, direction/state algebra,
// and the layered cell/level model described for the C2M format
// (spec.md §3, §4.2, §4.8).
package cc2

import "fmt"

// Dir is one of the eight compass directions, or DirNone for a
// directionless tile.
type Dir uint8

const (
	DirNone Dir = iota
	DirN
	DirE
	DirS
	DirW
	DirNE
	DirNW
	DirSE
	DirSW
)

var dirNames = map[Dir]string{
	DirN: "N", DirE: "E", DirS: "S", DirW: "W",
	DirNE: "NE", DirNW: "NW", DirSE: "SE", DirSW: "SW",
}

// Tile is one member of the closed CC2 tile enumeration (spec.md §3).
type Tile struct {
	Name   string
	ID     uint8
	family string
	dir    Dir
}

func (t *Tile) String() string { return t.Name }

// Dirs reports the direction this tile's name encodes, or DirNone.
func (t *Tile) Dirs() Dir { return t.dir }

func e(name string, id uint8, family string, dir Dir) *Tile {
	return &Tile{Name: name, ID: id, family: family, dir: dir}
}

// The full CC2 tile table, indexed 0x01-0x92 (spec.md §3; grounded on the
// original CC2 enumeration).
var Tiles = []*Tile{
	e("FLOOR", 0x01, "floor", DirNone),
	e("WALL", 0x02, "wall", DirNone),
	e("ICE", 0x03, "ice", DirNone),
	e("ICE_SW", 0x04, "ice", DirSW),
	e("ICE_NW", 0x05, "ice", DirNW),
	e("ICE_NE", 0x06, "ice", DirNE),
	e("ICE_SE", 0x07, "ice", DirSE),
	e("WATER", 0x08, "water", DirNone),
	e("FIRE", 0x09, "fire", DirNone),
	e("FORCE_N", 0x0A, "force", DirN),
	e("FORCE_E", 0x0B, "force", DirE),
	e("FORCE_S", 0x0C, "force", DirS),
	e("FORCE_W", 0x0D, "force", DirW),
	e("GREEN_TOGGLE_WALL", 0x0E, "toggle_wall", DirNone),
	e("GREEN_TOGGLE_FLOOR", 0x0F, "toggle_floor", DirNone),
	e("RED_TELEPORT", 0x10, "teleport", DirNone),
	e("BLUE_TELEPORT", 0x11, "teleport", DirNone),
	e("YELLOW_TELEPORT", 0x12, "teleport", DirNone),
	e("GREEN_TELEPORT", 0x13, "teleport", DirNone),
	e("EXIT", 0x14, "exit", DirNone),
	e("SLIME", 0x15, "slime", DirNone),
	e("CHIP", 0x16, "player", DirNone),
	e("DIRT_BLOCK", 0x17, "block", DirNone),
	e("WALKER", 0x18, "monster", DirNone),
	e("GLIDER", 0x19, "monster", DirNone),
	e("ICE_BLOCK", 0x1A, "block", DirNone),
	e("THIN_WALL_S", 0x1B, "panel", DirS),
	e("THIN_WALL_E", 0x1C, "panel", DirE),
	e("THIN_WALL_SE", 0x1D, "panel", DirSE),
	e("GRAVEL", 0x1E, "gravel", DirNone),
	e("GREEN_BUTTON", 0x1F, "button", DirNone),
	e("BLUE_BUTTON", 0x20, "button", DirNone),
	e("BLUE_TANK", 0x21, "monster", DirNone),
	e("RED_DOOR", 0x22, "door", DirNone),
	e("BLUE_DOOR", 0x23, "door", DirNone),
	e("YELLOW_DOOR", 0x24, "door", DirNone),
	e("GREEN_DOOR", 0x25, "door", DirNone),
	e("RED_KEY", 0x26, "key", DirNone),
	e("BLUE_KEY", 0x27, "key", DirNone),
	e("YELLOW_KEY", 0x28, "key", DirNone),
	e("GREEN_KEY", 0x29, "key", DirNone),
	e("IC_CHIP", 0x2A, "ic_chip", DirNone),
	e("EXTRA_IC_CHIP", 0x2B, "ic_chip", DirNone),
	e("CHIP_SOCKET", 0x2C, "socket", DirNone),
	e("POPUP_WALL", 0x2D, "wall", DirNone),
	e("APPEARING_WALL", 0x2E, "invisible_wall", DirNone),
	e("INVISIBLE_WALL", 0x2F, "invisible_wall", DirNone),
	e("SOLID_BLUE_WALL", 0x30, "blue_wall", DirNone),
	e("FALSE_BLUE_WALL", 0x31, "blue_wall", DirNone),
	e("DIRT", 0x32, "dirt", DirNone),
	e("ANT", 0x33, "monster", DirNone),
	e("CENTIPEDE", 0x34, "monster", DirNone),
	e("BALL", 0x35, "monster", DirNone),
	e("BLOB", 0x36, "monster", DirNone),
	e("RED_TEETH", 0x37, "monster", DirNone),
	e("FIREBALL", 0x38, "monster", DirNone),
	e("RED_BUTTON", 0x39, "button", DirNone),
	e("BROWN_BUTTON", 0x3A, "button", DirNone),
	e("CLEATS", 0x3B, "tool", DirNone),
	e("SUCTION_BOOTS", 0x3C, "tool", DirNone),
	e("FIRE_BOOTS", 0x3D, "tool", DirNone),
	e("FLIPPERS", 0x3E, "tool", DirNone),
	e("TOOL_THIEF", 0x3F, "thief", DirNone),
	e("BOMB", 0x40, "bomb", DirNone),
	e("OPEN_TRAP", 0x41, "trap", DirNone),
	e("TRAP", 0x42, "trap", DirNone),
	e("CLONE_MACHINE_OLD", 0x43, "cloner", DirNone),
	e("CLONE_MACHINE", 0x44, "cloner", DirNone),
	e("CLUE", 0x45, "clue", DirNone),
	e("FORCE_RANDOM", 0x46, "force", DirNone),
	e("GRAY_BUTTON", 0x47, "button", DirNone),
	e("SWIVEL_DOOR_SW", 0x48, "swivel", DirSW),
	e("SWIVEL_DOOR_NW", 0x49, "swivel", DirNW),
	e("SWIVEL_DOOR_NE", 0x4A, "swivel", DirNE),
	e("SWIVEL_DOOR_SE", 0x4B, "swivel", DirSE),
	e("TIME_BONUS", 0x4C, "time_pickup", DirNone),
	e("STOPWATCH", 0x4D, "time_pickup", DirNone),
	e("TRANSMOGRIFIER", 0x4E, "transmogrifier", DirNone),
	e("RAILROAD_TRACK", 0x4F, "railroad", DirNone),
	e("STEEL_WALL", 0x50, "wall", DirNone),
	e("TNT", 0x51, "tool", DirNone),
	e("HELMET", 0x52, "tool", DirNone),
	e("UNUSED_53", 0x53, "unused", DirNone),
	e("UNUSED_54", 0x54, "unused", DirNone),
	e("UNUSED_55", 0x55, "unused", DirNone),
	e("MELINDA", 0x56, "player", DirNone),
	e("BLUE_TEETH", 0x57, "monster", DirNone),
	e("EXPLOSION_ANIMATION", 0x58, "invalid_mob", DirNone),
	e("HIKING_BOOTS", 0x59, "tool", DirNone),
	e("MALE_ONLY_SIGN", 0x5A, "gender_sign", DirNone),
	e("FEMALE_ONLY_SIGN", 0x5B, "gender_sign", DirNone),
	e("LOGIC_GATE", 0x5C, "logic_gate", DirNone),
	e("UNUSED_5D", 0x5D, "unused", DirNone),
	e("PINK_BUTTON", 0x5E, "button", DirNone),
	e("FLAME_JET_OFF", 0x5F, "flame_jet", DirNone),
	e("FLAME_JET_ON", 0x60, "flame_jet", DirNone),
	e("ORANGE_BUTTON", 0x61, "button", DirNone),
	e("LIGHTNING_BOLT", 0x62, "tool", DirNone),
	e("YELLOW_TANK", 0x63, "monster", DirNone),
	e("YELLOW_TANK_BUTTON", 0x64, "button", DirNone),
	e("MIRROR_CHIP", 0x65, "monster", DirNone),
	e("MIRROR_MELINDA", 0x66, "monster", DirNone),
	e("UNUSED_67", 0x67, "unused", DirNone),
	e("BOWLING_BALL", 0x68, "tool", DirNone),
	e("ROVER", 0x69, "monster", DirNone),
	e("TIME_PENALTY", 0x6A, "time_pickup", DirNone),
	e("CUSTOM_FLOOR", 0x6B, "custom_floor", DirNone),
	e("UNUSED_6C", 0x6C, "unused", DirNone),
	e("THIN_WALL_CANOPY", 0x6D, "panel", DirNone),
	e("UNUSED_6E", 0x6E, "unused", DirNone),
	e("RAILROAD_SIGN", 0x6F, "tool", DirNone),
	e("CUSTOM_WALL", 0x70, "custom_wall", DirNone),
	e("LETTER_TILE_SPACE", 0x71, "letter", DirNone),
	e("PURPLE_TOGGLE_FLOOR", 0x72, "toggle_floor", DirNone),
	e("PURPLE_TOGGLE_WALL", 0x73, "toggle_wall", DirNone),
	e("UNUSED_74", 0x74, "unused", DirNone),
	e("UNUSED_75", 0x75, "unused", DirNone),
	e("MODIFIER_8BIT", 0x76, "modifier", DirNone),
	e("MODIFIER_16BIT", 0x77, "modifier", DirNone),
	e("MODIFIER_32BIT", 0x78, "modifier", DirNone),
	e("UNUSED_79", 0x79, "invalid_mob", DirNone),
	e("FLAG_10", 0x7A, "flag", DirNone),
	e("FLAG_100", 0x7B, "flag", DirNone),
	e("FLAG_1000", 0x7C, "flag", DirNone),
	e("SOLID_GREEN_WALL", 0x7D, "green_wall", DirNone),
	e("FALSE_GREEN_WALL", 0x7E, "green_wall", DirNone),
	e("NOT_ALLOWED_MARKER", 0x7F, "not_allowed", DirNone),
	e("FLAG_2X", 0x80, "flag", DirNone),
	e("DIRECTIONAL_BLOCK", 0x81, "block", DirNone),
	e("FLOOR_MIMIC", 0x82, "monster", DirNone),
	e("GREEN_BOMB", 0x83, "bomb", DirNone),
	e("GREEN_CHIP", 0x84, "ic_chip", DirNone),
	e("UNUSED_85", 0x85, "unused", DirNone),
	e("UNUSED_86", 0x86, "unused", DirNone),
	e("BLACK_BUTTON", 0x87, "button", DirNone),
	e("SWITCH_OFF", 0x88, "switch", DirNone),
	e("SWITCH_ON", 0x89, "switch", DirNone),
	e("KEY_THIEF", 0x8A, "thief", DirNone),
	e("GHOST", 0x8B, "monster", DirNone),
	e("STEEL_FOIL", 0x8C, "tool", DirNone),
	e("TURTLE", 0x8D, "monster", DirNone),
	e("SECRET_EYE", 0x8E, "tool", DirNone),
	e("BRIBE", 0x8F, "tool", DirNone),
	e("SPEED_BOOTS", 0x90, "tool", DirNone),
	e("UNUSED_91", 0x91, "unused", DirNone),
	e("HOOK", 0x92, "tool", DirNone),
}

var byID = func() map[uint8]*Tile {
	m := map[uint8]*Tile{}
	for _, t := range Tiles {
		m[t.ID] = t
	}
	return m
}()

var byName = func() map[string]*Tile {
	m := map[string]*Tile{}
	for _, t := range Tiles {
		m[t.Name] = t
	}
	return m
}()

// ByID looks up a tile by its wire code.
func ByID(id uint8) (*Tile, error) {
	if t, ok := byID[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("cc2: invalid tile code 0x%02X", id)
}

// ByName looks up a tile by its stable name.
func ByName(name string) (*Tile, bool) {
	t, ok := byName[name]
	return t, ok
}

var (
	Floor             = byName["FLOOR"]
	Wall              = byName["WALL"]
	IceFloor          = byName["ICE"]
	IceSW             = byName["ICE_SW"]
	IceNW             = byName["ICE_NW"]
	IceNE             = byName["ICE_NE"]
	IceSE             = byName["ICE_SE"]
	Water             = byName["WATER"]
	Fire              = byName["FIRE"]
	ForceN            = byName["FORCE_N"]
	ForceE            = byName["FORCE_E"]
	ForceS            = byName["FORCE_S"]
	ForceW            = byName["FORCE_W"]
	GreenToggleWall   = byName["GREEN_TOGGLE_WALL"]
	GreenToggleFloor  = byName["GREEN_TOGGLE_FLOOR"]
	RedTeleport       = byName["RED_TELEPORT"]
	BlueTeleport      = byName["BLUE_TELEPORT"]
	YellowTeleport    = byName["YELLOW_TELEPORT"]
	GreenTeleport     = byName["GREEN_TELEPORT"]
	Exit              = byName["EXIT"]
	Slime             = byName["SLIME"]
	Chip              = byName["CHIP"]
	DirtBlock         = byName["DIRT_BLOCK"]
	Walker            = byName["WALKER"]
	Glider            = byName["GLIDER"]
	IceBlock          = byName["ICE_BLOCK"]
	ThinWallS         = byName["THIN_WALL_S"]
	ThinWallE         = byName["THIN_WALL_E"]
	ThinWallSE        = byName["THIN_WALL_SE"]
	Gravel            = byName["GRAVEL"]
	GreenButton       = byName["GREEN_BUTTON"]
	BlueButton        = byName["BLUE_BUTTON"]
	BlueTank          = byName["BLUE_TANK"]
	RedDoor           = byName["RED_DOOR"]
	BlueDoor          = byName["BLUE_DOOR"]
	YellowDoor        = byName["YELLOW_DOOR"]
	GreenDoor         = byName["GREEN_DOOR"]
	RedKey            = byName["RED_KEY"]
	BlueKey           = byName["BLUE_KEY"]
	YellowKey         = byName["YELLOW_KEY"]
	GreenKey          = byName["GREEN_KEY"]
	ICChip            = byName["IC_CHIP"]
	ExtraICChip       = byName["EXTRA_IC_CHIP"]
	ChipSocket        = byName["CHIP_SOCKET"]
	PopupWall         = byName["POPUP_WALL"]
	AppearingWall     = byName["APPEARING_WALL"]
	InvisibleWall     = byName["INVISIBLE_WALL"]
	SolidBlueWall     = byName["SOLID_BLUE_WALL"]
	FalseBlueWall     = byName["FALSE_BLUE_WALL"]
	Dirt              = byName["DIRT"]
	Ant               = byName["ANT"]
	Centipede         = byName["CENTIPEDE"]
	Ball              = byName["BALL"]
	Blob              = byName["BLOB"]
	RedTeeth          = byName["RED_TEETH"]
	Fireball          = byName["FIREBALL"]
	RedButton         = byName["RED_BUTTON"]
	BrownButton       = byName["BROWN_BUTTON"]
	Cleats            = byName["CLEATS"]
	SuctionBoots      = byName["SUCTION_BOOTS"]
	FireBoots         = byName["FIRE_BOOTS"]
	Flippers          = byName["FLIPPERS"]
	ToolThief         = byName["TOOL_THIEF"]
	Bomb              = byName["BOMB"]
	OpenTrap          = byName["OPEN_TRAP"]
	Trap              = byName["TRAP"]
	CloneMachineOld   = byName["CLONE_MACHINE_OLD"]
	CloneMachine      = byName["CLONE_MACHINE"]
	Clue              = byName["CLUE"]
	ForceRandom       = byName["FORCE_RANDOM"]
	GrayButton        = byName["GRAY_BUTTON"]
	SwivelDoorSW      = byName["SWIVEL_DOOR_SW"]
	SwivelDoorNW      = byName["SWIVEL_DOOR_NW"]
	SwivelDoorNE      = byName["SWIVEL_DOOR_NE"]
	SwivelDoorSE      = byName["SWIVEL_DOOR_SE"]
	TimeBonus         = byName["TIME_BONUS"]
	Stopwatch         = byName["STOPWATCH"]
	Transmogrifier    = byName["TRANSMOGRIFIER"]
	RailroadTrack     = byName["RAILROAD_TRACK"]
	SteelWall         = byName["STEEL_WALL"]
	TNT               = byName["TNT"]
	Helmet            = byName["HELMET"]
	Melinda           = byName["MELINDA"]
	BlueTeeth         = byName["BLUE_TEETH"]
	ExplosionAnim     = byName["EXPLOSION_ANIMATION"]
	HikingBoots       = byName["HIKING_BOOTS"]
	MaleOnlySign      = byName["MALE_ONLY_SIGN"]
	FemaleOnlySign    = byName["FEMALE_ONLY_SIGN"]
	LogicGate         = byName["LOGIC_GATE"]
	PinkButton        = byName["PINK_BUTTON"]
	FlameJetOff       = byName["FLAME_JET_OFF"]
	FlameJetOn        = byName["FLAME_JET_ON"]
	OrangeButton      = byName["ORANGE_BUTTON"]
	LightningBolt     = byName["LIGHTNING_BOLT"]
	YellowTank        = byName["YELLOW_TANK"]
	YellowTankButton  = byName["YELLOW_TANK_BUTTON"]
	MirrorChip        = byName["MIRROR_CHIP"]
	MirrorMelinda     = byName["MIRROR_MELINDA"]
	BowlingBall       = byName["BOWLING_BALL"]
	Rover             = byName["ROVER"]
	TimePenalty       = byName["TIME_PENALTY"]
	CustomFloor       = byName["CUSTOM_FLOOR"]
	ThinWallCanopy    = byName["THIN_WALL_CANOPY"]
	RailroadSign      = byName["RAILROAD_SIGN"]
	CustomWall        = byName["CUSTOM_WALL"]
	LetterTileSpace   = byName["LETTER_TILE_SPACE"]
	PurpleToggleFloor = byName["PURPLE_TOGGLE_FLOOR"]
	PurpleToggleWall  = byName["PURPLE_TOGGLE_WALL"]
	Modifier8Bit      = byName["MODIFIER_8BIT"]
	Modifier16Bit     = byName["MODIFIER_16BIT"]
	Modifier32Bit     = byName["MODIFIER_32BIT"]
	Flag10            = byName["FLAG_10"]
	Flag100           = byName["FLAG_100"]
	Flag1000          = byName["FLAG_1000"]
	SolidGreenWall    = byName["SOLID_GREEN_WALL"]
	FalseGreenWall    = byName["FALSE_GREEN_WALL"]
	NotAllowedMarker  = byName["NOT_ALLOWED_MARKER"]
	Flag2X            = byName["FLAG_2X"]
	DirectionalBlock  = byName["DIRECTIONAL_BLOCK"]
	FloorMimic        = byName["FLOOR_MIMIC"]
	GreenBomb         = byName["GREEN_BOMB"]
	GreenChip         = byName["GREEN_CHIP"]
	BlackButton       = byName["BLACK_BUTTON"]
	SwitchOff         = byName["SWITCH_OFF"]
	SwitchOn          = byName["SWITCH_ON"]
	KeyThief          = byName["KEY_THIEF"]
	Ghost             = byName["GHOST"]
	SteelFoil         = byName["STEEL_FOIL"]
	Turtle            = byName["TURTLE"]
	SecretEye         = byName["SECRET_EYE"]
	Bribe             = byName["BRIBE"]
	SpeedBoots        = byName["SPEED_BOOTS"]
	Hook              = byName["HOOK"]
)
