package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "training_text.txt")
	require.NoError(t, os.WriteFile(input,
		[]byte("the theater thermal theme, the theater thermal theme"), 0644))
	require.NoError(t, run(args{input: input}))

	conf := filepath.Join(dir, "bpe.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("max_vocab: 260\nlog_interval: 1\n"), 0644))
	require.NoError(t, run(args{conf: conf, input: input}))

	cfg, err := loadConfig(args{conf: conf, maxVocab: 300})
	require.NoError(t, err)
	require.Equal(t, 300, cfg.MaxVocab)
	require.Equal(t, 1, cfg.LogInterval)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, run(args{input: filepath.Join(dir, "missing.txt")}))
	require.Error(t, run(args{conf: filepath.Join(dir, "missing.yaml")}))

	input := filepath.Join(dir, "training_text.txt")
	require.NoError(t, os.WriteFile(input, []byte("abc"), 0644))
	require.Error(t, run(args{input: input, maxVocab: 100}))
}
