// Package tws implements the CC1 TWS replay decoder: header parsing and
// the four-variant move-encoding format (spec.md §4.10).
package tws

import "github.com/google/uuid"

// Signature is the required TWS magic number (spec.md §4.10).
const Signature uint32 = 0x999B3335

// Ruleset identifies the move-validation rules a replay was recorded
// against.
type Ruleset uint16

const (
	RulesetLynx Ruleset = 1
	RulesetMS   Ruleset = 2
)

// MoveFormat identifies which of the four move-encoding variants produced
// a Move (spec.md §4.10, test-observable per spec.md §8).
type MoveFormat int

const (
	Format1Byte MoveFormat = iota + 1
	Format2Byte
	Format4Byte
	Format3Move
	FormatVariable
)

// Move is one decoded input event.
type Move struct {
	Tick      int
	Direction byte // 0=N 1=E 2=S 3=W, per spec.md §4.10
	RawBytes  []byte
	Format    MoveFormat
}

// Replay is one decoded TWS record (spec.md §4.10, original_source's
// TWSReplay, SPEC_FULL.md §3's supplemented full shape).
type Replay struct {
	ID uuid.UUID // synthetic correlation ID; not part of the file format

	LevelNumber int
	Password    string

	HasExtendedHeader bool
	Flag              byte
	SlideDirAndStep   byte
	RNGSeed           uint32
	TickCount         int32

	Moves []Move
}

// ReplaySet is every replay decoded from one TWS file plus its header and
// per-format tally (spec.md §4.10, §8 scenario 5).
type ReplaySet struct {
	Ruleset          Ruleset
	LastVisitedLevel int
	RemainderCount   int8

	// LevelsetName is the optional leading level-set-name record's
	// payload, or "Unspecified" when the file carries none
	// (original_source's tws_handler.py default, SPEC_FULL.md §3).
	LevelsetName string

	Replays []Replay

	// FormatCounts tallies how many decoded moves used each MoveFormat.
	FormatCounts map[MoveFormat]int
}
