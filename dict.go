package bytepair

// dict records which byte values occur in a corpus.
type dict struct {
	present [numBytes]bool
	size    int
}

func newDict(data []byte) *dict {
	d := &dict{}
	for _, b := range data {
		if !d.present[b] {
			d.present[b] = true
			d.size++
		}
	}
	return d
}

func (d *dict) Size() int {
	return d.size
}

func (d *dict) Range(fn func(byte)) {
	for i, ok := range d.present {
		if ok {
			fn(byte(i))
		}
	}
}
