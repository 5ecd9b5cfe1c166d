package bytepair

type stat struct {
	pair Pair
	freq int
}

// pairCounter maps every distinct adjacent pair to its number of
// occurrences and remembers the order in which pairs were first seen.
type pairCounter struct {
	counts map[Pair]int
	order  []Pair
}

func countPairs(seq *sequence) *pairCounter {
	c := &pairCounter{counts: make(map[Pair]int)}
	if seq.Size() < 2 {
		return c
	}
	seq.RangeStat(func(_ int, p Pair) {
		if _, ok := c.counts[p]; !ok {
			c.order = append(c.order, p)
		}
		c.counts[p]++
	})
	return c
}

func (c *pairCounter) Len() int {
	return len(c.order)
}

func (c *pairCounter) Count(p Pair) int {
	return c.counts[p]
}

// Range visits the pairs in first occurrence order.
func (c *pairCounter) Range(fn func(Pair, int)) {
	for _, p := range c.order {
		fn(p, c.counts[p])
	}
}

// Best returns the most frequent pair. Among pairs sharing the maximum
// count the one that first occurs earliest in the sequence wins.
func (c *pairCounter) Best() (stat, bool) {
	var best stat
	c.Range(func(p Pair, freq int) {
		if freq > best.freq {
			best = stat{pair: p, freq: freq}
		}
	})
	return best, best.freq > 0
}

type stopReason int

const (
	stopNone stopReason = iota
	stopNoPairs
	stopUnique
	stopCeiling
)

func (r stopReason) String() string {
	switch r {
	case stopNoPairs:
		return "no pairs left"
	case stopUnique:
		return "no pair repeats"
	case stopCeiling:
		return "vocabulary ceiling reached"
	}
	return "running"
}

// selectPair runs the counting and selecting states of one training round.
func selectPair(seq *sequence, next, ceiling Code) (stat, stopReason) {
	best, ok := countPairs(seq).Best()
	if !ok {
		return best, stopNoPairs
	}
	if best.freq == 1 {
		return best, stopUnique
	}
	if next >= ceiling {
		return best, stopCeiling
	}
	return best, stopNone
}
