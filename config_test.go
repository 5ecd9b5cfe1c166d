package bytepair

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 50000, cfg.MaxVocab)
	require.Equal(t, Code(256), cfg.FirstCode)
	require.NoError(t, cfg.Validate())
	require.Equal(t, cfg, New().Config())
}

func TestConfigValidate(t *testing.T) {
	for _, cfg := range []Config{
		{MaxVocab: 50000, FirstCode: 255},
		{MaxVocab: 256, FirstCode: 256},
		{MaxVocab: 50000, FirstCode: 256, LogInterval: -1},
	} {
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		_, err := NewWithConfig(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestConfigMaxVocabOverflow(t *testing.T) {
	big := math.MaxInt32
	big++
	cfg := DefaultConfig()
	cfg.MaxVocab = big
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	_, err := NewWithConfig(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg.MaxVocab = math.MaxInt32
	tk, err := NewWithConfig(cfg)
	require.NoError(t, err)
	v, st := tk.Train([]byte("abababababab"))
	require.False(t, st.Truncated)
	require.Greater(t, v.Merges(), 0)
}

func TestLoadConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bpe.yaml")
	require.NoError(t, os.WriteFile(dir, []byte("max_vocab: 1000\nlog_interval: 0\n"), 0644))
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, Config{MaxVocab: 1000, FirstCode: 256, LogInterval: 0}, cfg)

	require.NoError(t, os.WriteFile(dir, []byte("first_code: 10\n"), 0644))
	_, err = LoadConfig(dir)
	require.ErrorIs(t, err, ErrInvalidConfig)

	require.NoError(t, os.WriteFile(dir, []byte("max_vocab: [\n"), 0644))
	_, err = LoadConfig(dir)
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestStat(t *testing.T) {
	st := Stat{Passes: 2, InputLen: 8, OutputLen: 6, Elapsed: time.Second}
	require.InDelta(t, 0.25, st.Compression(), 1e-9)
	require.Equal(t, 0.0, Stat{}.Compression())
	require.Contains(t, st.String(), "passes=2")
}
