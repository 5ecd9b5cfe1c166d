package bytepair

import (
	"fmt"
	"sort"
	"time"
)

// Vocab is the set of known codes. It is filled once by training and then
// only read, so it may be shared by concurrent Encode and Decode calls.
type Vocab struct {
	entries map[Code]Entry
	pairs   map[Pair]Code // lowest code learned for each pair
	merges  []Code        // merge codes in allocation order
	leaves  int
	next    Code
}

func newVocab(dict *dict, firstCode Code) *Vocab {
	v := &Vocab{
		entries: make(map[Code]Entry, dict.Size()),
		pairs:   make(map[Pair]Code),
		next:    firstCode,
	}
	dict.Range(func(b byte) {
		v.entries[Code(b)] = leafEntry(b)
		v.leaves++
	})
	return v
}

// add registers p under the next unallocated code and returns that code.
func (v *Vocab) add(p Pair) Code {
	code := v.next
	v.entries[code] = mergeEntry(p)
	if _, ok := v.pairs[p]; !ok {
		v.pairs[p] = code
	}
	v.merges = append(v.merges, code)
	v.next++
	return code
}

// Len returns the number of entries, leaves and merges together.
func (v *Vocab) Len() int {
	return len(v.entries)
}

func (v *Vocab) Leaves() int {
	return v.leaves
}

// Merges returns the number of learned merges.
func (v *Vocab) Merges() int {
	return len(v.merges)
}

func (v *Vocab) Entry(code Code) (Entry, bool) {
	e, ok := v.entries[code]
	return e, ok
}

// Codes returns every known code in increasing order.
func (v *Vocab) Codes() []Code {
	ret := make([]Code, 0, len(v.entries))
	for code := range v.entries {
		ret = append(ret, code)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})
	return ret
}

// Lookup returns the lowest merge code learned for p.
func (v *Vocab) Lookup(p Pair) (Code, bool) {
	code, ok := v.pairs[p]
	return code, ok
}

// Bytes expands a single code to the raw bytes it stands for.
func (v *Vocab) Bytes(code Code) ([]byte, error) {
	if !v.known(code) {
		return nil, fmt.Errorf("bytes: %w %d", ErrUnknownCode, code)
	}
	return v.expand(nil, code), nil
}

// Tokens returns the expansion of every known code, ordered by code.
func (v *Vocab) Tokens() [][]byte {
	codes := v.Codes()
	ret := make([][]byte, len(codes))
	for i, code := range codes {
		ret[i] = v.expand(nil, code)
	}
	return ret
}

// known reports whether code decodes: raw bytes always do, anything else
// needs an entry.
func (v *Vocab) known(code Code) bool {
	if code >= 0 && code < numBytes {
		return true
	}
	_, ok := v.entries[code]
	return ok
}

// expand appends the bytes of a known code to buf. Children of a stored
// merge are always stored, so the walk never meets an unknown code.
func (v *Vocab) expand(buf []byte, code Code) []byte {
	e := v.entries[code]
	if code < numBytes || !e.IsMerge() {
		return append(buf, byte(code))
	}
	buf = v.expand(buf, e.Pair().A)
	return v.expand(buf, e.Pair().B)
}

func (v *Vocab) Encode(data []byte) []Code {
	codes, _ := v.EncodeStat(data)
	return codes
}

func (v *Vocab) EncodeStat(data []byte) ([]Code, Stat) {
	return v.encode(sequenceFromBytes(data))
}

// EncodeCodes encodes an already tokenized sequence, for example raw bytes
// widened to codes. Every code must be a raw byte or known to v. The input
// slice is left untouched.
func (v *Vocab) EncodeCodes(codes []Code) ([]Code, error) {
	for i, code := range codes {
		if !v.known(code) {
			return nil, fmt.Errorf("encode: %w %d at %d", ErrUnknownCode, code, i)
		}
	}
	ret, _ := v.encode(sequenceFromCodes(codes))
	return ret, nil
}

// encode repeatedly scans seq left to right. At each position a matching
// pair is folded into its right slot, so the new code can match again with
// its right neighbour in the same pass, and the left slot is consumed.
// Passes repeat until one makes no replacement.
func (v *Vocab) encode(seq *sequence) ([]Code, Stat) {
	begin := time.Now()
	st := Stat{InputLen: seq.Size()}
	for {
		st.Passes++
		var found bool
		data := seq.Codes()
		for i := 0; i+1 < len(data); i++ {
			code, ok := v.pairs[Pair{data[i], data[i+1]}]
			if !ok {
				continue
			}
			data[i] = consumed
			data[i+1] = code
			found = true
		}
		if !found {
			break
		}
		seq = seq.Compact()
	}
	st.OutputLen = seq.Size()
	st.Elapsed = time.Since(begin)
	return seq.Codes(), st
}

func (v *Vocab) Decode(codes []Code) ([]byte, error) {
	data, _, err := v.DecodeStat(codes)
	return data, err
}

// DecodeStat unfolds merges breadth first: every pass replaces each merge
// code by its two children until a pass leaves the sequence unchanged.
func (v *Vocab) DecodeStat(codes []Code) ([]byte, Stat, error) {
	begin := time.Now()
	st := Stat{InputLen: len(codes)}
	seq := sequenceFromCodes(codes)
	for {
		st.Passes++
		var expanded bool
		next := newSequence(seq.Size() * 2)
		var err error
		seq.Range(func(code Code) {
			if err != nil {
				return
			}
			if code >= 0 && code < numBytes {
				next.Push(code)
				return
			}
			e, ok := v.entries[code]
			if !ok {
				err = fmt.Errorf("decode: %w %d", ErrUnknownCode, code)
				return
			}
			next.Push(e.Pair().A)
			next.Push(e.Pair().B)
			expanded = true
		})
		if err != nil {
			return nil, st, err
		}
		seq = next
		if !expanded {
			break
		}
	}
	ret := make([]byte, 0, seq.Size())
	seq.Range(func(code Code) {
		ret = append(ret, byte(code))
	})
	st.OutputLen = len(ret)
	st.Elapsed = time.Since(begin)
	return ret, st, nil
}

// EncodeBatch encodes every input concurrently.
func (v *Vocab) EncodeBatch(inputs [][]byte) [][]Code {
	ret := make([][]Code, len(inputs))
	parallel(len(inputs), func(i int) {
		ret[i] = v.Encode(inputs[i])
	})
	return ret
}

// DecodeBatch decodes every input concurrently and returns the first error
// by input order.
func (v *Vocab) DecodeBatch(inputs [][]Code) ([][]byte, error) {
	ret := make([][]byte, len(inputs))
	errs := make([]error, len(inputs))
	parallel(len(inputs), func(i int) {
		ret[i], errs[i] = v.Decode(inputs[i])
	})
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
	}
	return ret, nil
}
