package c2m

import (
	"bytes"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{1, 2, 3},
		bytes.Repeat([]byte{0x42}, 300),
		[]byte("the quick brown fox the quick brown fox the quick brown fox"),
		append(bytes.Repeat([]byte{1, 2, 3, 4}, 50), []byte{9, 9, 9}...),
	}
	for i, raw := range cases {
		packed := Pack(raw)
		got := Unpack(packed)
		if !bytes.Equal(got, raw) {
			t.Errorf("case %d: Unpack(Pack(b)) = % x, want % x", i, got, raw)
		}
	}
}

func TestUnpackHandlesCyclicBackReference(t *testing.T) {
	// u16 length=12, literal block [1,2,3], then a 9-byte back-reference
	// with offset 3 that must wrap cyclically to repeat [1,2,3] four times.
	raw := []byte{12, 0, 3, 1, 2, 3, 0x89, 3}
	got := Unpack(raw)
	want := []byte{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3}
	if !bytes.Equal(got, want) {
		t.Errorf("Unpack cyclic back-reference = % x, want % x", got, want)
	}
}

func TestPackOfEmptyInputUnpacksToEmpty(t *testing.T) {
	got := Unpack(Pack(nil))
	if len(got) != 0 {
		t.Errorf("Unpack(Pack(nil)) = % x, want empty", got)
	}
}
