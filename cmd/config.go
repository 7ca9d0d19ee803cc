package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the application defaults read from the TOML configuration file.
type Config struct {
	Book     string `toml:"book"`     // path to the journal file
	Currency string `toml:"currency"` // ISO display currency for reports
}

func defaultConfig() Config {
	return Config{Book: "tradetrackr.json", Currency: "USD"}
}

// LoadConfig reads the TOML configuration at path. An empty path falls back
// to $HOME/.tradetrackr/config.toml, and a missing fallback file yields the
// defaults. An explicit path that cannot be read is an error.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".tradetrackr", "config.toml")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("could not read configuration %q: %w", path, err)
	}
	if cfg.Book == "" {
		cfg.Book = defaultConfig().Book
	}
	if cfg.Currency == "" {
		cfg.Currency = defaultConfig().Currency
	}
	return cfg, nil
}
