package bytepair

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultMaxVocab    = 50000
	defaultFirstCode   = numBytes
	defaultLogInterval = 1000
)

// Config holds the training limits.
type Config struct {
	// MaxVocab is the vocabulary ceiling: no code at or above it is allocated.
	MaxVocab int `yaml:"max_vocab"`
	// FirstCode is the first code handed out to a learned merge.
	FirstCode Code `yaml:"first_code"`
	// LogInterval logs training progress every n merges, 0 disables it.
	LogInterval int `yaml:"log_interval"`
}

func DefaultConfig() Config {
	return Config{
		MaxVocab:    defaultMaxVocab,
		FirstCode:   defaultFirstCode,
		LogInterval: defaultLogInterval,
	}
}

func (cfg Config) Validate() error {
	if cfg.FirstCode < numBytes {
		return fmt.Errorf("%w: first_code %d overlaps raw bytes", ErrInvalidConfig, cfg.FirstCode)
	}
	if cfg.MaxVocab <= int(cfg.FirstCode) {
		return fmt.Errorf("%w: max_vocab %d must exceed first_code %d",
			ErrInvalidConfig, cfg.MaxVocab, cfg.FirstCode)
	}
	if cfg.MaxVocab > math.MaxInt32 {
		return fmt.Errorf("%w: max_vocab %d does not fit a code", ErrInvalidConfig, cfg.MaxVocab)
	}
	if cfg.LogInterval < 0 {
		return fmt.Errorf("%w: negative log_interval %d", ErrInvalidConfig, cfg.LogInterval)
	}
	return nil
}

// LoadConfig reads a yaml file on top of DefaultConfig, so missing keys keep
// their defaults.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(dir)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", dir, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
