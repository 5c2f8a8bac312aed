package policy

import "fmt"

// ConfigError reports a structurally invalid policy dataset. It is
// raised while the dataset is loaded and is fatal to startup; a running
// process never sees one.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("policy dataset: %s: %s", e.Field, e.Reason)
}
