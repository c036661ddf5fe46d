package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Levels accepted for loglevel.
var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads and validates an autobackup configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.LogLevel != "" && !validLevels[cfg.LogLevel] {
		errs = append(errs, fmt.Sprintf("invalid loglevel '%s' — must be one of: trace, debug, info, warn, error", cfg.LogLevel))
	}

	for i, entry := range cfg.FilesToIgnore {
		prefix := fmt.Sprintf("filesToIgnore[%d]", i)
		if entry == "" {
			errs = append(errs, fmt.Sprintf("%s: entry must not be empty", prefix))
			continue
		}
		errs = append(errs, validateRelative(entry, prefix)...)
	}

	for i, folder := range cfg.Backup {
		prefix := fmt.Sprintf("backup[%d]", i)
		if folder.Source != "" {
			prefix = fmt.Sprintf("backup folder '%s'", folder.Source)
		}

		if folder.Source == "" {
			errs = append(errs, fmt.Sprintf("%s: 'source' is required", prefix))
		} else {
			errs = append(errs, validateRelative(folder.Source, prefix+" source")...)
		}
		if folder.Destination == "" {
			errs = append(errs, fmt.Sprintf("%s: 'destination' is required", prefix))
		} else {
			errs = append(errs, validateRelative(folder.Destination, prefix+" destination")...)
		}
	}

	return errs
}

// validateRelative rejects entries that could reach outside a root: absolute
// paths and paths that climb above the root once cleaned.
func validateRelative(path, prefix string) []string {
	var errs []string
	if filepath.IsAbs(path) {
		errs = append(errs, fmt.Sprintf("%s: '%s' must be relative to the root, not absolute", prefix, path))
		return errs
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		errs = append(errs, fmt.Sprintf("%s: '%s' escapes the root", prefix, path))
	}
	return errs
}
