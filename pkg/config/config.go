// Package config defines the configuration types for inkwell.
// These are pure data structures; discovery and parsing live in load.go
// and the CLI decides how to act on them.
package config

// LogLevel names a charmbracelet/log level.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// IsValid returns true if the level is one inkwell understands.
func (l LogLevel) IsValid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	default:
		return false
	}
}

// ImportConfig controls the Markdown importer.
type ImportConfig struct {
	// DetectLanguage tags untagged fenced code blocks with a guessed
	// language.
	DetectLanguage bool `yaml:"detect_language"`
}

// BackupsConfig controls backups when formatting files in place.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for inkwell.
type Config struct {
	// LogLevel sets the minimum log level.
	LogLevel LogLevel `yaml:"log_level"`

	// Extensions lists the enabled extensions in registration order.
	// Empty means all built-ins in their default order. Order matters:
	// earlier extensions win when two could claim the same source.
	Extensions []string `yaml:"extensions"`

	// Import configures the Markdown importer.
	Import ImportConfig `yaml:"import"`

	// Backups configures backups for in-place formatting.
	Backups BackupsConfig `yaml:"backups"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel: LevelWarn,
		Import:   ImportConfig{DetectLanguage: true},
		Backups:  BackupsConfig{Enabled: true},
	}
}

// Validate reports the first problem with the config, if any. known is the
// set of registered extension names.
func (c *Config) Validate(known map[string]bool) error {
	if !c.LogLevel.IsValid() {
		return &ValidationError{Field: "log_level", Value: string(c.LogLevel)}
	}
	seen := make(map[string]bool, len(c.Extensions))
	for _, name := range c.Extensions {
		if !known[name] {
			return &ValidationError{Field: "extensions", Value: name}
		}
		if seen[name] {
			return &ValidationError{Field: "extensions", Value: name, Dup: true}
		}
		seen[name] = true
	}
	return nil
}

// ValidationError describes a rejected config value.
type ValidationError struct {
	Field string
	Value string
	Dup   bool
}

func (e *ValidationError) Error() string {
	if e.Dup {
		return "config: duplicate value " + e.Value + " in " + e.Field
	}
	return "config: invalid value " + e.Value + " for " + e.Field
}
