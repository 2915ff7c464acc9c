package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates invalid backend settings
	// (for example, an empty base URL or non-positive timeout).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")

	// ErrInvalidDevserverConfigs indicates invalid devserver settings
	// (for example, an empty listen address).
	ErrInvalidDevserverConfigs = errors.New("invalid devserver configuration")
)

func (c *StructuredConfig) validate() error {
	if c.Backend.BaseURL == "" || c.Backend.Timeout <= 0 {
		return ErrInvalidBackendConfigs
	}
	if c.Devserver.Address == "" {
		return ErrInvalidDevserverConfigs
	}
	return nil
}
