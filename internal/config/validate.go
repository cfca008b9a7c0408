package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSegmenter(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateSegmenter() error {
	if c.Segmenter.MaxGapSeconds < 0 {
		return errors.New("segmenter.max_gap_seconds must not be negative")
	}
	if c.Segmenter.MinDurationSeconds < 0 {
		return errors.New("segmenter.min_duration_seconds must not be negative")
	}
	return nil
}
