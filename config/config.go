// Package config holds version information and the tunable settings shared by the tools.
// Settings come from defaults, an optional settings file and GENE_FINDER_* environment
// variables, in increasing order of precedence. Command-line flags are applied on top by
// each tool.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Policy defaults
const (
	DefaultTrials  = 1500 // shuffles used to build the null model
	DefaultWorkers = 0    // 0 means one worker per CPU
	DefaultSeed    = 0    // 0 means seed from the clock
	DefaultMinLen  = 100  // orf_finder reporting cutoff in nucleotides
	DefaultStrand  = "both"
)

// NullModelConfig controls the shuffle-based threshold.
type NullModelConfig struct {
	// number of shuffled copies of the input to scan
	Trials int `mapstructure:"trials"`

	// size of the trial worker pool
	Workers int `mapstructure:"workers"`

	// seed for the shuffle generator
	Seed uint64 `mapstructure:"seed"`
}

// ORFConfig is for the plain ORF listing
type ORFConfig struct {
	// the minimum ORF length written to the GFF3 output
	MinLen int `mapstructure:"min-len"`

	// positive, negative or both
	Strand string `mapstructure:"strand"`
}

// Settings is the root-level settings struct
type Settings struct {
	NullModel NullModelConfig `mapstructure:"null-model"`
	ORF       ORFConfig       `mapstructure:"orf"`
	// print progress lines to stderr
	Verbose bool `mapstructure:"verbose"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("null-model.trials", DefaultTrials)
	v.SetDefault("null-model.workers", DefaultWorkers)
	v.SetDefault("null-model.seed", DefaultSeed)
	v.SetDefault("orf.min-len", DefaultMinLen)
	v.SetDefault("orf.strand", DefaultStrand)
	v.SetDefault("verbose", false)

	// GENE_FINDER_NULL_MODEL_TRIALS etc.
	v.SetEnvPrefix("gene_finder")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings builds Settings from defaults, the file at path (skipped when path is
// empty) and the environment.
func LoadSettings(path string) (Settings, error) {
	s, err := readSettings(path)
	if err != nil {
		return s, err
	}
	return s, s.Validate()
}

func readSettings(path string) (Settings, error) {
	var s Settings

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return s, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("unable to decode settings: %w", err)
	}
	return s, nil
}

// Validate rejects settings no tool can run with.
func (s Settings) Validate() error {
	if s.NullModel.Trials <= 0 {
		return fmt.Errorf("null-model.trials must be positive, got %d", s.NullModel.Trials)
	}
	if s.NullModel.Workers < 0 {
		return fmt.Errorf("null-model.workers must not be negative, got %d", s.NullModel.Workers)
	}
	if s.ORF.MinLen < 0 {
		return fmt.Errorf("orf.min-len must not be negative, got %d", s.ORF.MinLen)
	}
	switch strings.ToLower(s.ORF.Strand) {
	case "positive", "negative", "both":
	default:
		return fmt.Errorf("orf.strand must be positive, negative or both, got %q", s.ORF.Strand)
	}
	return nil
}
