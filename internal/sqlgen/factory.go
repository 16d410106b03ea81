package sqlgen

import (
	"fmt"

	"spendlens/internal/config"
	"spendlens/internal/port"
)

// ProviderFactory is a function that creates a SQLGenerator from a provider config.
type ProviderFactory func(cfg *config.SQLGenProviderConfig) (port.SQLGenerator, error)

// registry of SQL generation provider factories, populated explicitly via
// RegisterProvider at wiring time.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a SQL generation provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGenerator creates a SQLGenerator from a provider config using the
// registered factory.
func NewGenerator(cfg *config.SQLGenProviderConfig) (port.SQLGenerator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown sqlgen provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
