package config

import "strings"

// InvalidConfigError carries every problem found in a configuration. Both
// structural validation failures (possibly several) and load failures (a
// single underlying message) travel through this one type so callers have a
// single failure path to handle.
type InvalidConfigError struct {
	Errors []string
}

func (e *InvalidConfigError) Error() string {
	return "invalid merge configuration:\n  - " + strings.Join(e.Errors, "\n  - ")
}
