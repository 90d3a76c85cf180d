package combine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".gitcat.yaml"

const (
	defaultBeginMarkerFormat = "// BEGIN FILE: %s"
	defaultEndMarker         = "// END FILE"
	defaultDirLabel          = "(DIR)"
	defaultMaxDepth          = 3
)

// Config holds the settings one run operates under. It is built once in the
// command layer and passed down; nothing reads it as global state.
type Config struct {
	BeginMarkerFormat string // fmt template for the begin marker, receives the file path
	EndMarker         string
	DirLabel          string // label shown before directory entries in the listing
	MaxDepth          int    // path-segment depth kept when expanding a directory selection
	Workers           int    // reader pool size; <= 0 selects runtime.NumCPU
}

// DefaultConfig returns the stock marker strings and limits.
func DefaultConfig() Config {
	return Config{
		BeginMarkerFormat: defaultBeginMarkerFormat,
		EndMarker:         defaultEndMarker,
		DirLabel:          defaultDirLabel,
		MaxDepth:          defaultMaxDepth,
	}
}

// fileConfig mirrors the optional .gitcat.yaml in the target directory.
type fileConfig struct {
	MaxDepth *int   `yaml:"max_depth"`
	Workers  *int   `yaml:"workers"`
	Output   string `yaml:"output"`
}

// LoadConfigFile overlays dir/.gitcat.yaml onto cfg. An absent file is not an
// error and leaves cfg untouched. The returned string is the output path
// override from the file, empty when unset.
func LoadConfigFile(dir string, cfg Config) (Config, string, error) {
	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, "", nil
		}
		return cfg, "", fmt.Errorf("failed to read %s: %w", configFileName, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, "", fmt.Errorf("failed to parse %s: %w", configFileName, err)
	}

	if fc.MaxDepth != nil {
		cfg.MaxDepth = *fc.MaxDepth
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	return cfg, fc.Output, nil
}
