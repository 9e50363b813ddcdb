package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/pathword/internal/paths"
	"github.com/mesh-intelligence/pathword/internal/store"
	"github.com/mesh-intelligence/pathword/internal/words"
)

// setup resolves directories, loads configuration, and attaches the
// puzzle store. The caller must Detach the returned store.
func setup() (*viper.Viper, *store.Store, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, nil, err
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	st := store.New()
	if err := st.Attach(dataDir); err != nil {
		return nil, nil, fmt.Errorf("attach store: %w", err)
	}
	return cfg, st, nil
}

// wordSource loads the configured words file, falling back to the
// embedded default lists.
func wordSource(cfg *viper.Viper) (*words.Source, error) {
	if path := cfg.GetString(cfgKeyWordsFile); path != "" {
		return words.LoadFile(path)
	}
	return words.Default()
}

// newRNG builds the random source for generation. A non-zero --seed
// pins the sequence for reproducible runs; otherwise the clock seeds it
// so repeated runs intentionally differ.
func newRNG() *rand.Rand {
	seed := flags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
