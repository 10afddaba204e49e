package config

import "os"

// Default values for configuration.
const (
	DefaultInput  = "data/inputs/02.txt"
	DefaultOutput = "text"
)

// Environment variable names.
const (
	EnvInput  = "CUBECHECK_INPUT"
	EnvOutput = "CUBECHECK_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if input := os.Getenv(EnvInput); input != "" {
		c.Input = input
	}
	if out := os.Getenv(EnvOutput); out != "" {
		c.Output = out
	}
}
