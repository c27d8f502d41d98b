package dat

import (
	"fmt"

	"github.com/ChipMcCallahan/CCTools/cc1"
	"github.com/ChipMcCallahan/CCTools/ccbinary"
	"github.com/ChipMcCallahan/CCTools/internal/cp1252"
)

// Parse decodes raw DAT bytes into a Levelset. It recovers from any
// internal cursor panic and returns it as an error, the same discipline
// repparser.parseProtected applies around its sliceReader.
func Parse(b []byte) (ls *Levelset, err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = fmt.Errorf("dat: parse: %w", e)
			} else {
				err = fmt.Errorf("dat: parse: %v", p)
			}
			ls = nil
		}
	}()

	r := ccbinary.NewReader(b)
	magic := r.U32()
	numLevels := int(r.U16())
	levels := make([]*Level, numLevels)
	for i := 0; i < numLevels; i++ {
		levels[i] = parseLevel(r)
	}
	return &Levelset{Levels: levels, MagicNumber: magic}, nil
}

func parseLevel(r *ccbinary.Reader) *Level {
	r.U16() // level_size_bytes, unused
	number := int(r.U16())
	time := int(r.U16())
	chips := int(r.U16())
	mapDetail := int(r.U16())

	topLen := int(r.U16())
	top := decompressLayer(r.Slice(topLen))
	bottomLen := int(r.U16())
	bottom := decompressLayer(r.Slice(bottomLen))

	level := cc1.NewLevel()
	for i := 0; i < cc1GridCells; i++ {
		level.Map[i] = cc1.Cell{Top: cc1.ByID(top[i]), Bottom: cc1.ByID(bottom[i])}
	}

	out := &Level{Level: level, RecordNumber: number, MapDetail: mapDetail, TrapOpenShut: map[int]uint16{}}
	out.Time, out.Chips = time, chips

	remaining := int(r.U16())
	var fieldOrder []byte
	var extras []ExtraField
	for remaining > 0 {
		field := r.U8()
		length := int(r.U8())
		content := r.Slice(length)
		remaining -= length + 2
		fieldOrder = append(fieldOrder, field)

		switch field {
		case TitleField:
			out.Title = cp1252.DecodeCString(content)
		case TrapsField:
			parseTraps(content, out)
		case CloneField:
			parseCloners(content, out)
		case PasswordField:
			out.Password = decodePassword(stripNUL(content))
		case HintField:
			out.Hint = cp1252.DecodeCString(content)
		case MovementField:
			parseMovement(content, out)
		default:
			extras = append(extras, ExtraField{Tag: field, Content: content})
		}
	}
	out.FieldOrder = fieldOrder
	out.ExtraFields = extras
	return out
}

// stripNUL drops the single trailing NUL terminator DAT text/password
// fields carry (mirrors the source's content[:-1]).
func stripNUL(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == 0 {
		return b[:len(b)-1]
	}
	return b
}

func parseTraps(b []byte, out *Level) {
	r := ccbinary.NewReader(b)
	for r.Remaining() >= 10 {
		bx, by := int(r.U16()), int(r.U16())
		tx, ty := int(r.U16()), int(r.U16())
		openShut := r.U16()
		buttonPos := by*cc1.GridSize + bx
		trapPos := ty*cc1.GridSize + tx
		out.Traps = append(out.Traps, cc1.Wire{Button: buttonPos, Target: trapPos})
		out.TrapOpenShut[buttonPos] = openShut
	}
}

func parseCloners(b []byte, out *Level) {
	r := ccbinary.NewReader(b)
	for r.Remaining() >= 8 {
		bx, by := int(r.U16()), int(r.U16())
		cx, cy := int(r.U16()), int(r.U16())
		out.Cloners = append(out.Cloners, cc1.Wire{Button: by*cc1.GridSize + bx, Target: cy*cc1.GridSize + cx})
	}
}

func parseMovement(b []byte, out *Level) {
	r := ccbinary.NewReader(b)
	for r.Remaining() >= 2 {
		x, y := int(r.U8()), int(r.U8())
		out.Movement = append(out.Movement, y*cc1.GridSize+x)
	}
}
