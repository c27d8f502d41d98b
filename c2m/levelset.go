package c2m

// ParseLevelset decodes a concatenated sequence of C2M level bodies (each
// terminated by its own END section) plus a trailing opaque C2G script,
// mirroring original_source's ParsedC2MLevelset (SPEC_FULL.md §3). name is
// supplied by the caller (the archive/ccl/c2g entry point knows the pack's
// display name; the C2M stream itself carries none).
func ParseLevelset(name string, levelBodies [][]byte, c2g []byte) (*Levelset, error) {
	levels := make([]*Level, len(levelBodies))
	for i, body := range levelBodies {
		lvl, err := Parse(body)
		if err != nil {
			return nil, err
		}
		levels[i] = lvl
	}
	return &Levelset{Name: name, Levels: levels, C2G: c2g}, nil
}

// WriteLevelset encodes every level in ls back to its own C2M byte body.
func WriteLevelset(ls *Levelset) [][]byte {
	out := make([][]byte, len(ls.Levels))
	for i, lvl := range ls.Levels {
		out[i] = Write(lvl)
	}
	return out
}
