package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional ~/.permem.yaml shape. Every field can also come
// from flags or environment variables, which take precedence.
type fileConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"apiKey"`
	UserID string `yaml:"userId"`
	Model  string `yaml:"model"`
}

// loadFileConfig reads the config file at path, or ~/.permem.yaml when path
// is empty. A missing default file is not an error: the zero config is
// returned so flag/env resolution proceeds. An explicitly passed path that
// cannot be read is an error.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".permem.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cfg, fmt.Errorf("reading %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// newVerboseLogger returns a text logger at debug level for the --verbose
// flag, writing to stderr so it doesn't interleave with the chat transcript.
func newVerboseLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
