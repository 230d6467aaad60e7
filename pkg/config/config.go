package config

import (
	"errors"
	"fmt"
	"os"
)

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if err := validateFile(cfg.FileA); err != nil {
		return fmt.Errorf("first file: %w", err)
	}

	if err := validateFile(cfg.FileB); err != nil {
		return fmt.Errorf("second file: %w", err)
	}

	switch cfg.Output {
	case OutputText, OutputJSON, OutputYAML:
		// Valid
	case "":
		cfg.Output = DefaultOutput
	default:
		return fmt.Errorf("invalid output format %q (must be text, json, or yaml)", cfg.Output)
	}

	if cfg.Quiet && cfg.Verbose {
		return errors.New("quiet and verbose cannot be combined")
	}

	return nil
}

func validateFile(path string) error {
	if path == "" {
		return errors.New("path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	return nil
}
