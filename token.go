package bytepair

import "fmt"

// Code identifies either a raw byte (0-255) or a learned merge token.
type Code int32

const (
	numBytes = 256
	consumed = Code(-1)
)

// Pair is an ordered pair of adjacent codes.
type Pair struct {
	A, B Code
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.A, p.B)
}

// Entry is a vocabulary entry: a leaf holding one raw byte, or a merge of
// two codes that were already known when the merge was learned.
type Entry struct {
	merge bool
	b     byte
	pair  Pair
}

func leafEntry(b byte) Entry {
	return Entry{b: b}
}

func mergeEntry(p Pair) Entry {
	return Entry{merge: true, pair: p}
}

func (e Entry) IsMerge() bool {
	return e.merge
}

// Byte returns the raw byte of a leaf entry.
func (e Entry) Byte() byte {
	return e.b
}

// Pair returns the children of a merge entry.
func (e Entry) Pair() Pair {
	return e.pair
}

func (e Entry) String() string {
	if e.merge {
		return "merge" + e.pair.String()
	}
	return fmt.Sprintf("leaf(%d)", e.b)
}
