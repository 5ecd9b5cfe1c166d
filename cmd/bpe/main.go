package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/lwch/bytepair"
	"github.com/lwch/logging"
)

var errMismatch = errors.New("decoded output does not match input")

type args struct {
	conf     string
	input    string
	maxVocab int
}

func main() {
	var a args
	flag.StringVar(&a.conf, "conf", "", "yaml config file")
	flag.IntVar(&a.maxVocab, "max-vocab", 0, "override vocabulary ceiling")
	flag.Parse()
	a.input = "training_text.txt"
	if flag.NArg() > 0 {
		a.input = flag.Arg(0)
	}
	if err := run(a); err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}
}

func loadConfig(a args) (bytepair.Config, error) {
	cfg := bytepair.DefaultConfig()
	if len(a.conf) > 0 {
		var err error
		cfg, err = bytepair.LoadConfig(a.conf)
		if err != nil {
			return cfg, err
		}
	}
	if a.maxVocab > 0 {
		cfg.MaxVocab = a.maxVocab
	}
	return cfg, nil
}

// run trains on the input file, encodes the same data, decodes it back and
// fails when the round trip does not reproduce the input.
func run(a args) error {
	cfg, err := loadConfig(a)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	tk, err := bytepair.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(a.input)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", a.input, err)
	}
	logging.Info("loaded %s: %s", a.input, humanize.Bytes(uint64(len(data))))

	vocab, st := tk.Train(data)
	logging.Info("train took %s, vocabulary size: %s tokens, learned merges: %s",
		st.Elapsed, humanize.Comma(int64(vocab.Len())), humanize.Comma(int64(vocab.Merges())))
	if st.Truncated {
		logging.Info("training stopped at the vocabulary ceiling %d", cfg.MaxVocab)
	}

	codes, st := vocab.EncodeStat(data)
	logging.Info("encode took %s in %d passes, token count: %s",
		st.Elapsed, st.Passes, humanize.Comma(int64(len(codes))))
	logging.Info("compression: %.1f%% (%s bytes => %s tokens)", st.Compression()*100,
		humanize.Comma(int64(len(data))), humanize.Comma(int64(len(codes))))

	decoded, st, err := vocab.DecodeStat(codes)
	if err != nil {
		return err
	}
	logging.Info("decode took %s in %d passes, output length: %s",
		st.Elapsed, st.Passes, humanize.Bytes(uint64(len(decoded))))

	if !bytes.Equal(data, decoded) {
		return fmt.Errorf("%w: expected %d bytes, got %d", errMismatch, len(data), len(decoded))
	}
	logging.Info("success: input matches output")
	return nil
}
