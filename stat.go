package bytepair

import (
	"fmt"
	"time"
)

// Stat reports what a single train, encode or decode call did.
type Stat struct {
	Passes    int
	Merges    int
	InputLen  int
	OutputLen int
	Truncated bool // training stopped at the vocabulary ceiling
	Elapsed   time.Duration
}

// Compression returns the fraction of input positions saved, 0.25 meaning
// the output is a quarter shorter than the input.
func (s Stat) Compression() float64 {
	if s.InputLen == 0 {
		return 0
	}
	return 1 - float64(s.OutputLen)/float64(s.InputLen)
}

func (s Stat) String() string {
	return fmt.Sprintf("passes=%d merges=%d in=%d out=%d truncated=%v cost=%s",
		s.Passes, s.Merges, s.InputLen, s.OutputLen, s.Truncated, s.Elapsed)
}
