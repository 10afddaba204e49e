// Package config provides run-config loading and validation for cubecheck.
package config

// Config is the root configuration structure loaded from YAML.
//
// Color limits are not part of it; they are fixed in package game.
type Config struct {
	// Input is the path of the games file.
	Input string `yaml:"input"`

	// Output is the report format (text or json).
	Output string `yaml:"output"`

	// Quiet prints only the final total.
	Quiet bool `yaml:"quiet,omitempty"`
}
