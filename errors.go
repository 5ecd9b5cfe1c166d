package bytepair

import "errors"

var (
	// ErrUnknownCode is returned when decoding a code the vocabulary never
	// learned, usually a token produced by a different vocabulary.
	ErrUnknownCode = errors.New("unknown code")
	// ErrInvalidConfig is returned for configurations that cannot train.
	ErrInvalidConfig = errors.New("invalid config")
)
