package dat

import (
	"github.com/ChipMcCallahan/CCTools/cc1"
	"github.com/ChipMcCallahan/CCTools/ccbinary"
	"github.com/ChipMcCallahan/CCTools/cctoolserr"
	"github.com/ChipMcCallahan/CCTools/internal/cp1252"
)

// Write encodes a Levelset to DAT bytes (spec.md §4.6, §6).
func Write(ls *Levelset) ([]byte, error) {
	w := ccbinary.NewWriter()
	magic := ls.MagicNumber
	if magic == 0 {
		magic = DefaultMagicNumber
	}
	w.U32(magic)
	w.U16(uint16(len(ls.Levels)))
	for i, level := range ls.Levels {
		levelBytes, err := writeLevel(level, i+1)
		if err != nil {
			return nil, err
		}
		w.U16(uint16(len(levelBytes)))
		w.Bytes(levelBytes)
	}
	return w.Written(), nil
}

func writeLevel(level *Level, positionalNumber int) ([]byte, error) {
	w1 := ccbinary.NewWriter()
	number := level.RecordNumber
	if number == 0 {
		number = positionalNumber
	}
	w1.U16(uint16(number))
	w1.U16(uint16(level.Time))
	w1.U16(uint16(level.Chips))
	mapDetail := level.MapDetail
	if mapDetail == 0 {
		mapDetail = 1
	}
	w1.U16(uint16(mapDetail))

	top, bottom := writeLayers(level.Map)
	w1.U16(uint16(len(top)))
	w1.Bytes(top)
	w1.U16(uint16(len(bottom)))
	w1.Bytes(bottom)

	trailer, err := writeTrailer(level)
	if err != nil {
		return nil, err
	}
	w1.U16(uint16(len(trailer)))
	w1.Bytes(trailer)
	return w1.Written(), nil
}

func writeLayers(cells []cc1.Cell) (top, bottom []byte) {
	topRaw := make([]byte, len(cells))
	bottomRaw := make([]byte, len(cells))
	for i, c := range cells {
		topRaw[i] = c.Top.ID
		bottomRaw[i] = c.Bottom.ID
	}
	return compressLayer(topRaw), compressLayer(bottomRaw)
}

func writeTrailer(level *Level) ([]byte, error) {
	if len(level.Movement) > cc1.MovementCap {
		return nil, &cctoolserr.MovementCapacityError{Count: len(level.Movement)}
	}
	order := level.FieldOrder
	if len(order) == 0 {
		order = StandardFields
	}
	order = append([]byte(nil), order...)

	has := func(field byte) bool {
		for _, f := range order {
			if f == field {
				return true
			}
		}
		return false
	}
	if level.Title != "" && !has(TitleField) {
		order = append(order, TitleField)
	}
	if len(level.Traps) > 0 && !has(TrapsField) {
		order = append(order, TrapsField)
	}
	if len(level.Cloners) > 0 && !has(CloneField) {
		order = append(order, CloneField)
	}
	if level.Password != "" && !has(PasswordField) {
		order = append(order, PasswordField)
	}
	if level.Hint != "" && !has(HintField) {
		order = append(order, HintField)
	}
	if len(level.Movement) > 0 && !has(MovementField) {
		order = append(order, MovementField)
	}

	w := ccbinary.NewWriter()
	for _, field := range order {
		switch {
		case field == TitleField && level.Title != "":
			writeTaggedText(w, TitleField, level.Title)
		case field == TrapsField && len(level.Traps) > 0:
			writeTraps(w, level)
		case field == CloneField && len(level.Cloners) > 0:
			writeCloners(w, level)
		case field == PasswordField && level.Password != "":
			if err := writePassword(w, level.Password); err != nil {
				return nil, err
			}
		case field == HintField && level.Hint != "":
			writeTaggedText(w, HintField, level.Hint)
		case field == MovementField && len(level.Movement) > 0:
			writeMovement(w, level)
		case !isStandardField(field):
			for _, extra := range level.ExtraFields {
				if extra.Tag == field {
					w.U8(extra.Tag)
					w.U8(byte(len(extra.Content)))
					w.Bytes(extra.Content)
					break
				}
			}
		}
	}
	return w.Written(), nil
}

func isStandardField(field byte) bool {
	switch field {
	case TitleField, TrapsField, CloneField, PasswordField, HintField, MovementField:
		return true
	}
	return false
}

func writeTaggedText(w *ccbinary.Writer, tag byte, s string) {
	body := append(cp1252.Encode(s), 0)
	w.U8(tag)
	w.U8(byte(len(body)))
	w.Bytes(body)
}

func writeTraps(w *ccbinary.Writer, level *Level) {
	w.U8(TrapsField)
	w.U8(byte(10 * len(level.Traps)))
	for _, wire := range level.Traps {
		bx, by := wire.Button%cc1.GridSize, wire.Button/cc1.GridSize
		tx, ty := wire.Target%cc1.GridSize, wire.Target/cc1.GridSize
		w.U16(uint16(bx))
		w.U16(uint16(by))
		w.U16(uint16(tx))
		w.U16(uint16(ty))
		w.U16(level.TrapOpenShut[wire.Button])
	}
}

func writeCloners(w *ccbinary.Writer, level *Level) {
	w.U8(CloneField)
	w.U8(byte(8 * len(level.Cloners)))
	for _, wire := range level.Cloners {
		bx, by := wire.Button%cc1.GridSize, wire.Button/cc1.GridSize
		cx, cy := wire.Target%cc1.GridSize, wire.Target/cc1.GridSize
		w.U16(uint16(bx))
		w.U16(uint16(by))
		w.U16(uint16(cx))
		w.U16(uint16(cy))
	}
}

func writePassword(w *ccbinary.Writer, password string) error {
	encoded, err := encodePassword(password)
	if err != nil {
		return err
	}
	body := append(encoded, 0)
	w.U8(PasswordField)
	w.U8(byte(len(body)))
	w.Bytes(body)
	return nil
}

func writeMovement(w *ccbinary.Writer, level *Level) {
	w.U8(MovementField)
	w.U8(byte(2 * len(level.Movement)))
	for _, p := range level.Movement {
		w.U8(byte(p % cc1.GridSize))
		w.U8(byte(p / cc1.GridSize))
	}
}
