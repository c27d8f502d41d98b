package c2m

import (
	"github.com/ChipMcCallahan/CCTools/cc2"
	"github.com/ChipMcCallahan/CCTools/ccbinary"
)

// decodeMap reads a MAP body: u8 width, u8 height, then width*height cells
// left-to-right, top-to-bottom, each a variable-length element sequence
// terminated by a terrain-class element (spec.md §4.8).
func decodeMap(b []byte) *cc2.Level {
	r := ccbinary.NewReader(b)
	w, h := int(r.U8()), int(r.U8())
	level := cc2.NewLevel(w, h)
	for i := 0; i < w*h; i++ {
		cell := &level.Cells[i]
		*cell = cc2.Cell{}
		for {
			el := decodeElement(r)
			cell.Set(el)
			if el.Category() == cc2.CategoryTerrain {
				break
			}
		}
	}
	return level
}

func decodeElement(r *ccbinary.Reader) *cc2.Element {
	code := r.U8()
	tile, err := cc2.ByID(code)
	if err != nil {
		panic(err)
	}

	switch {
	case cc2.Modifiers().Contains(tile):
		width := map[uint8]int{cc2.Modifier8Bit.ID: 1, cc2.Modifier16Bit.ID: 2, cc2.Modifier32Bit.ID: 4}[tile.ID]
		var mod uint32
		for i := 0; i < width; i++ {
			mod |= uint32(r.U8()) << (8 * i)
		}
		el := decodeElement(r)
		applyModifier(el, mod)
		return el
	case cc2.Mobs().Contains(tile):
		dirByte := r.U8()
		el := cc2.NewElement(tile)
		el.Dir = [4]cc2.Dir{cc2.DirN, cc2.DirE, cc2.DirS, cc2.DirW}[dirByte&0x03]
		if tile == cc2.DirectionalBlock {
			el.ArrowMask = r.U8()
		}
		return el
	case tile == cc2.ThinWallCanopy:
		el := cc2.NewElement(tile)
		el.ThinWallMask = r.U8()
		return el
	default:
		return cc2.NewElement(tile)
	}
}

// applyModifier interprets a decoded modifier word against el's tile per
// the per-tile semantics in spec.md §4.8.
func applyModifier(el *cc2.Element, mod uint32) {
	t := el.Tile
	switch {
	case cc2.Wired().Contains(t):
		el.Wires = uint8(mod & 0x0F)
		el.WireTunnels = uint8((mod >> 4) & 0x0F)
	case t == cc2.LetterTileSpace:
		el.Char = decodeLetter(byte(mod))
	case t == cc2.CloneMachine:
		el.CloneDirs = uint8(mod & 0x0F)
	case cc2.CustomTiles().Contains(t):
		el.CustomColor = int(mod & 0x03)
	case t == cc2.LogicGate:
		g := cc2.DecodeGate(byte(mod))
		el.Gate = &g
	case t == cc2.RailroadTrack:
		el.Tracks = uint8(mod & 0xFF)
		if mod > 0xFF {
			second := byte(mod >> 8)
			el.ActiveTrack = 1 << (second & 0x0F)
			el.InitialEntry = cc2.Dir((second >> 4) + 1)
		}
	}
}

func decodeLetter(b byte) byte {
	switch {
	case b >= 0x1C && b <= 0x1F:
		return b // arrow glyph, caller maps to ↑→↓← by convention
	case b >= 0x20 && b <= 0x5F:
		return b
	default:
		return 0
	}
}

// encodeMap is the exact inverse of decodeMap.
func encodeMap(level *cc2.Level) []byte {
	w := ccbinary.NewWriter()
	w.U8(byte(level.Width))
	w.U8(byte(level.Height))
	for i := range level.Cells {
		for _, el := range level.Cells[i].Elements() {
			encodeElement(w, el)
		}
	}
	return w.Written()
}

func encodeElement(w *ccbinary.Writer, el *cc2.Element) {
	mod, width := buildModifier(el)
	if width > 0 {
		modTile := map[int]*cc2.Tile{1: cc2.Modifier8Bit, 2: cc2.Modifier16Bit, 4: cc2.Modifier32Bit}[width]
		w.U8(modTile.ID)
		for i := 0; i < width; i++ {
			w.U8(byte(mod >> (8 * i)))
		}
	}

	w.U8(el.Tile.ID)
	switch {
	case cc2.Mobs().Contains(el.Tile):
		w.U8(dirByte(el.Dir))
		if el.Tile == cc2.DirectionalBlock {
			w.U8(el.ArrowMask)
		}
	case el.Tile == cc2.ThinWallCanopy:
		w.U8(el.ThinWallMask)
	}
}

func dirByte(d cc2.Dir) byte {
	switch d {
	case cc2.DirN:
		return 0
	case cc2.DirE:
		return 1
	case cc2.DirS:
		return 2
	case cc2.DirW:
		return 3
	default:
		return 0
	}
}

// buildModifier computes the narrowest modifier payload for el, returning
// width 0 when el carries no modifier data worth emitting (an all-zero
// payload is omitted entirely per spec.md §4.8's encoder contract).
func buildModifier(el *cc2.Element) (value uint32, width int) {
	t := el.Tile
	switch {
	case cc2.Wired().Contains(t):
		value = uint32(el.Wires&0x0F) | uint32(el.WireTunnels&0x0F)<<4
	case t == cc2.LetterTileSpace:
		value = uint32(el.Char)
	case t == cc2.CloneMachine:
		value = uint32(el.CloneDirs & 0x0F)
	case cc2.CustomTiles().Contains(t):
		value = uint32(el.CustomColor & 0x03)
	case t == cc2.LogicGate && el.Gate != nil:
		value = uint32(el.Gate.Encode())
	case t == cc2.RailroadTrack:
		value = uint32(el.Tracks)
		if el.ActiveTrack != 0 || el.InitialEntry != cc2.DirNone {
			second := byte(activeTrackField(el.ActiveTrack)) | byte(entryField(el.InitialEntry))<<4
			value |= uint32(second) << 8
		}
	default:
		return 0, 0
	}
	if value == 0 {
		return 0, 0
	}
	switch {
	case value <= 0xFF:
		return value, 1
	case value <= 0xFFFF:
		return value, 2
	default:
		return value, 4
	}
}

func activeTrackField(bit int) int {
	for i, b := range []int{cc2.TrackNE, cc2.TrackSE, cc2.TrackSW, cc2.TrackNW, cc2.TrackHorizontal, cc2.TrackVertical} {
		if b == bit {
			return i
		}
	}
	return 0
}

func entryField(d cc2.Dir) int {
	if d == cc2.DirNone {
		return 0
	}
	return int(d) - 1
}
