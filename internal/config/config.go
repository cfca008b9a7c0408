package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir string `toml:"log_dir"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Segmenter contains the grouping thresholds applied when none are given on
// the command line.
type Segmenter struct {
	Group              bool    `toml:"group"`
	MaxGapSeconds      float64 `toml:"max_gap_seconds"`
	MinDurationSeconds float64 `toml:"min_duration_seconds"`
	Clean              bool    `toml:"clean"`
}

// Batch contains configuration for directory batch runs.
type Batch struct {
	OutputDir string `toml:"output_dir"`
}

// Config is the root configuration document.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Logging   Logging   `toml:"logging"`
	Segmenter Segmenter `toml:"segmenter"`
	Batch     Batch     `toml:"batch"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/gavel/config.toml")
}

// Load reads configuration from path, or from the default location when path
// is empty. It returns the effective config, the resolved path, and whether
// a file existed there. Missing files are not an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	candidate := strings.TrimSpace(path)
	explicit := candidate != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		candidate = defaultPath
	}

	expanded, err := ExpandPath(candidate)
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return "", false, fmt.Errorf("config file %s not found", expanded)
			}
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("check config path: %w", err)
	}
	return expanded, true, nil
}

func (c *Config) normalize() error {
	logDir := strings.TrimSpace(c.Paths.LogDir)
	if logDir != "" {
		expanded, err := ExpandPath(logDir)
		if err != nil {
			return fmt.Errorf("expand log_dir: %w", err)
		}
		c.Paths.LogDir = expanded
	} else {
		c.Paths.LogDir = ""
	}

	outputDir := strings.TrimSpace(c.Batch.OutputDir)
	if outputDir != "" {
		expanded, err := ExpandPath(outputDir)
		if err != nil {
			return fmt.Errorf("expand batch output_dir: %w", err)
		}
		c.Batch.OutputDir = expanded
	} else {
		c.Batch.OutputDir = ""
	}

	if level := strings.TrimSpace(os.Getenv("GAVEL_LOG_LEVEL")); level != "" {
		c.Logging.Level = level
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}

// ExpandPath resolves a leading ~ to the current user's home directory and
// returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	pathValue = strings.TrimSpace(pathValue)
	if pathValue == "" {
		return "", errors.New("empty path")
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimPrefix(pathValue, "~"))
	}
	return filepath.Abs(pathValue)
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
