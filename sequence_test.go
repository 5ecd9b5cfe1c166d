package bytepair

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceMergeOverlap(t *testing.T) {
	seq := sequenceFromBytes([]byte("aaa"))
	merged := seq.Merge(Pair{'a', 'a'}, 256)
	require.Equal(t, []Code{256, 256}, merged.Codes())
	require.Equal(t, []Code{'a', 'a', 'a'}, seq.Codes())
}

func TestSequenceMerge(t *testing.T) {
	seq := sequenceFromBytes([]byte("abcabcabc"))
	merged := seq.Merge(Pair{'a', 'b'}, 256)
	require.Equal(t, []Code{256, 'b', 'c', 256, 'b', 'c', 256, 'b'}, merged.Codes())
	require.Equal(t, seq.Size()-1, merged.Size())
}

func TestSequenceMergeShort(t *testing.T) {
	require.Empty(t, newSequence(0).Merge(Pair{1, 2}, 256).Codes())
	require.Equal(t, []Code{'x'}, sequenceFromBytes([]byte("x")).Merge(Pair{'x', 'x'}, 256).Codes())
}

func TestSequenceCompact(t *testing.T) {
	seq := sequenceFromCodes([]Code{consumed, 256, 'c', consumed, 257})
	require.Equal(t, []Code{256, 'c', 257}, seq.Compact().Codes())
}

func TestSequenceRangeStat(t *testing.T) {
	var pairs []Pair
	sequenceFromBytes([]byte("abc")).RangeStat(func(i int, p Pair) {
		pairs = append(pairs, p)
	})
	require.Equal(t, []Pair{{'a', 'b'}, {'b', 'c'}}, pairs)
	require.Equal(t, "[97 98 99]", sequenceFromBytes([]byte("abc")).String())
}
