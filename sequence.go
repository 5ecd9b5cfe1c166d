package bytepair

import (
	"strconv"
	"strings"
)

type sequence struct {
	data []Code
}

func newSequence(capacity int) *sequence {
	return &sequence{data: make([]Code, 0, capacity)}
}

func sequenceFromBytes(data []byte) *sequence {
	seq := newSequence(len(data))
	for _, b := range data {
		seq.Push(Code(b))
	}
	return seq
}

func sequenceFromCodes(codes []Code) *sequence {
	seq := newSequence(len(codes))
	seq.data = append(seq.data, codes...)
	return seq
}

func (s *sequence) Push(code Code) {
	s.data = append(s.data, code)
}

func (s *sequence) Size() int {
	return len(s.data)
}

func (s *sequence) Codes() []Code {
	return s.data
}

func (s *sequence) Range(fn func(Code)) {
	for _, code := range s.data {
		fn(code)
	}
}

// RangeStat calls fn for every adjacent pair, left to right.
func (s *sequence) RangeStat(fn func(int, Pair)) {
	for i := 0; i+1 < len(s.data); i++ {
		fn(i, Pair{s.data[i], s.data[i+1]})
	}
}

// Merge builds the next training sequence. Every position i that starts the
// selected pair becomes code, others are carried over; the scan never skips
// ahead, so overlapping matches (a run of three equal codes) each yield a
// code. The last position only takes part in the final comparison, which
// makes the result exactly one element shorter than the input.
func (s *sequence) Merge(p Pair, code Code) *sequence {
	if len(s.data) < 2 {
		return sequenceFromCodes(s.data)
	}
	ret := newSequence(len(s.data) - 1)
	s.RangeStat(func(i int, pair Pair) {
		if pair == p {
			ret.Push(code)
			return
		}
		ret.Push(s.data[i])
	})
	return ret
}

// Compact drops consumed slots left behind by an encode pass.
func (s *sequence) Compact() *sequence {
	ret := newSequence(len(s.data))
	for _, code := range s.data {
		if code != consumed {
			ret.Push(code)
		}
	}
	return ret
}

func (s *sequence) String() string {
	ret := make([]string, 0, len(s.data))
	for _, code := range s.data {
		ret = append(ret, strconv.Itoa(int(code)))
	}
	return "[" + strings.Join(ret, " ") + "]"
}
