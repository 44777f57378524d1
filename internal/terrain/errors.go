package terrain

import "fmt"

// ConfigError reports an invalid parameter value. Validation runs before any
// sampling begins, so a failed build never leaves a partial height field
// behind; the caller keeps whatever field it already holds.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("terrain: invalid %s: %s", e.Field, e.Reason)
}
