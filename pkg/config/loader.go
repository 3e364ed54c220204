package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up at the repository root
// when no explicit path is given.
const DefaultFileName = ".auto-merge.yml"

// Load reads, parses and validates a configuration file. On success the
// returned Config has its project root resolved against the file's directory
// and must be treated as read-only from then on. Every failure, whether the
// file could not be obtained or the content is structurally incomplete, is
// reported as an [*InvalidConfigError].
func Load(path string) (*Config, error) {
	// #nosec G304 - the config path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidConfigError{Errors: []string{
			fmt.Sprintf("Could not read configuration file %s: %v", path, err),
		}}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, &InvalidConfigError{Errors: []string{
			fmt.Sprintf("Could not resolve configuration directory: %v", err),
		}}
	}
	cfg.ResolveProjectRoot(absDir)

	return cfg, nil
}

// Parse unmarshals and validates raw configuration bytes. The caller is
// responsible for the subsequent [Config.ResolveProjectRoot] call, since only
// it knows where the bytes came from.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidConfigError{Errors: []string{
			fmt.Sprintf("Could not parse configuration: %v", err),
		}}
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &InvalidConfigError{Errors: errs}
	}

	return &cfg, nil
}
