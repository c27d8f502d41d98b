package tws

import "github.com/ChipMcCallahan/CCTools/ccbinary"

// decodeMoves parses a run of move-encoding bytes to the end of the
// reader, tracking cumulative ticks and tallying formats into counts
// (spec.md §4.10).
func decodeMoves(r *ccbinary.Reader, counts map[MoveFormat]int) []Move {
	var moves []Move
	tick := 0
	for r.Remaining() > 0 {
		start := r.Position()
		b0 := r.Peek(1)[0]

		switch b0 & 0x03 {
		case 0x01:
			raw := r.Slice(1)
			// TTTDDD01: bits 5-7 time, bits 2-4 direction, bits 0-1 format tag.
			time := int(raw[0]>>5) & 0x07
			dir := (raw[0] >> 2) & 0x07
			tick += time + 1
			moves = append(moves, Move{Tick: tick, Direction: dir, RawBytes: raw, Format: Format1Byte})
			counts[Format1Byte]++
		case 0x02:
			raw := r.Slice(2)
			v := uint16(raw[0]) | uint16(raw[1])<<8
			dir := byte((v >> 2) & 0x07)
			time := int((v >> 5) & 0x7FF)
			tick += time + 1
			moves = append(moves, Move{Tick: tick, Direction: dir, RawBytes: raw, Format: Format2Byte})
			counts[Format2Byte]++
		case 0x00:
			raw := r.Slice(1)
			b := raw[0]
			// FFEEDD00: bits 2-3 first move, bits 4-5 second, bits 6-7 third.
			dirs := [3]byte{(b >> 2) & 0x03, (b >> 4) & 0x03, (b >> 6) & 0x03}
			for _, d := range dirs {
				tick += 4
				moves = append(moves, Move{Tick: tick, Direction: d, RawBytes: raw, Format: Format3Move})
				counts[Format3Move]++
			}
		case 0x03:
			if b0&0x10 == 0 {
				raw := r.Slice(4)
				v := uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
				dir := byte((v >> 2) & 0x03)
				time := int((v >> 5) & 0x7FFFFF)
				tick += time + 1
				moves = append(moves, Move{Tick: tick, Direction: dir, RawBytes: raw, Format: Format4Byte})
				counts[Format4Byte]++
			} else {
				nn := int((b0 >> 2) & 0x03)
				total := nn + 2 // first byte + (nn+1) more
				raw := r.Slice(total)
				var bits uint64
				for i := total - 1; i >= 0; i-- {
					bits = bits<<8 | uint64(raw[i])
				}
				dir := byte((bits >> 5) & 0x1FF)
				time := int((bits >> 14) & 0x7FFFFF)
				tick += time + 1
				moves = append(moves, Move{Tick: tick, Direction: dir, RawBytes: raw, Format: FormatVariable})
				counts[FormatVariable]++
			}
		}
		if r.Position() == start {
			break // malformed trailing byte; stop rather than loop forever
		}
	}
	return moves
}
