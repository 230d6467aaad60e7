package config

// Default values for configuration.
const (
	DefaultOutput = OutputText
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: DefaultOutput,
	}
}
