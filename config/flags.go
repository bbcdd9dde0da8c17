package config

import (
	"flag"
	"fmt"
)

// RegisterFlags adds the shared settings flags to fs. Only flags the user actually sets
// are applied by Override, so file and environment values survive otherwise.
func RegisterFlags(fs *flag.FlagSet) *string {
	fs.Int("trials", DefaultTrials, "Number of shuffles for the null model")
	fs.Int("workers", DefaultWorkers, "Null model worker count (0 = one per CPU)")
	fs.Uint64("seed", DefaultSeed, "Seed for the shuffle generator (0 = from clock)")
	fs.Bool("verbose", false, "Print progress to stderr")
	return fs.String("config", "", "Settings file (yaml, json or toml)")
}

// Override applies explicitly set flags from fs on top of s.
func (s *Settings) Override(fs *flag.FlagSet) error {
	fs.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		v := getter.Get()
		switch f.Name {
		case "trials":
			s.NullModel.Trials = v.(int)
		case "workers":
			s.NullModel.Workers = v.(int)
		case "seed":
			s.NullModel.Seed = v.(uint64)
		case "verbose":
			s.Verbose = v.(bool)
		case "minlen":
			s.ORF.MinLen = v.(int)
		case "strand":
			s.ORF.Strand = v.(string)
		}
	})
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// FromFlags is LoadSettings followed by Override, the order every tool uses.
func FromFlags(fs *flag.FlagSet, path string) (Settings, error) {
	s, err := readSettings(path)
	if err != nil {
		return s, err
	}
	if err := s.Override(fs); err != nil {
		return s, err
	}
	return s, nil
}
