// Package flags implements the ProcessorDisabler port on top of static
// configuration.
package flags

import (
	"github.com/mktsync/backend/internal/domain/integration"
)

// ConfigDisabler disables processors listed by name in configuration.
// The set is fixed at process start; checks are pure and lock-free so
// they can run inside validity predicates.
type ConfigDisabler struct {
	disabled map[string]bool
}

// NewConfigDisabler creates a disabler for the given processor names.
func NewConfigDisabler(names []string) *ConfigDisabler {
	disabled := make(map[string]bool, len(names))
	for _, name := range names {
		if name != "" {
			disabled[name] = true
		}
	}
	return &ConfigDisabler{disabled: disabled}
}

// IsEventDisabled reports whether the processor is administratively
// disabled.
func (d *ConfigDisabler) IsEventDisabled(processorName string) bool {
	return d.disabled[processorName]
}

// Ensure ConfigDisabler implements ProcessorDisabler
var _ integration.ProcessorDisabler = (*ConfigDisabler)(nil)
