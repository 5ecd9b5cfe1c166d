package bytepair

import (
	"io"
	"os"
	"time"

	"github.com/lwch/logging"
)

// Tokenizer learns a byte pair vocabulary from a training corpus.
type Tokenizer struct {
	cfg Config
}

func New() *Tokenizer {
	return &Tokenizer{cfg: DefaultConfig()}
}

func NewWithConfig(cfg Config) (*Tokenizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tokenizer{cfg: cfg}, nil
}

func (t *Tokenizer) Config() Config {
	return t.cfg
}

// Train builds a vocabulary with the default configuration. The training
// Stat is dropped, use New().Train to keep it.
func Train(data []byte) *Vocab {
	v, _ := New().Train(data)
	return v
}

func (t *Tokenizer) TrainFile(dir string) (*Vocab, Stat, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, Stat{}, err
	}
	defer f.Close()
	return t.TrainReader(f)
}

// TrainReader reads r to the end and trains on everything it returned.
func (t *Tokenizer) TrainReader(r io.Reader) (*Vocab, Stat, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		logging.Error("read corpus: %v", err)
		return nil, Stat{}, err
	}
	v, st := t.Train(data)
	return v, st, nil
}

// Train runs the merge loop over data: count adjacent pairs, pick the most
// frequent one, rewrite the working sequence with a new code and register
// the merge. It stops when no pair repeats or the ceiling is reached.
func (t *Tokenizer) Train(data []byte) (*Vocab, Stat) {
	begin := time.Now()
	dict := newDict(data)
	logging.Info("dict size: %d, total bytes: %d", dict.Size(), len(data))

	vocab := newVocab(dict, t.cfg.FirstCode)
	seq := sequenceFromBytes(data)
	ceiling := Code(t.cfg.MaxVocab)
	st := Stat{InputLen: len(data)}

	var reason stopReason
	for {
		var best stat
		best, reason = selectPair(seq, vocab.next, ceiling)
		st.Passes++
		if reason != stopNone {
			break
		}
		code := vocab.add(best.pair)
		seq = seq.Merge(best.pair, code)
		st.Merges++
		if t.cfg.LogInterval > 0 && st.Merges%t.cfg.LogInterval == 0 {
			logging.Info("round %d, best stat: (%s, %s) => %d, freq %d, %d codes left",
				st.Merges, fmtShow(vocab.expand(nil, best.pair.A)), fmtShow(vocab.expand(nil, best.pair.B)),
				code, best.freq, seq.Size())
		}
	}
	st.Truncated = reason == stopCeiling
	st.OutputLen = seq.Size()
	st.Elapsed = time.Since(begin)
	logging.Info("train done: %s, %d merges, vocab size %d, cost %s",
		reason, st.Merges, vocab.Len(), st.Elapsed)
	return vocab, st
}
