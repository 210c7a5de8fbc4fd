// Package config loads the frontsettings YAML configuration.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default frontsettings configuration. Empty
// BlobFile and Database mean the XDG data directory paths.
func DefaultConfig() *Config {
	return &Config{
		Source:  SourceFile,
		Profile: "default",
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	config := DefaultConfig()
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
