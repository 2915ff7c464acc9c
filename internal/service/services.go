package service

import (
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/store"
)

// Services aggregates the resolution core built over one provider instance.
type Services struct {
	Values   ValueService
	KeySpace KeySpaceService
	Defaults DefaultsService
	Fetcher  FetchService
	Info     InfoService
}

// NewServices wires the resolution core. The defaults registry is supplied by
// the caller so it can outlive provider rebuilds (Initialize is idempotent
// and must not reset already-registered defaults).
func NewServices(provider Provider, registry *store.DefaultsRegistry, log *logger.Logger) *Services {
	fetcher := NewFetchController(provider, log)

	return &Services{
		Values:   NewValueResolver(provider, log),
		KeySpace: NewKeySpace(provider, registry),
		Defaults: NewDefaultsService(provider, registry, log),
		Fetcher:  fetcher,
		Info:     NewInfoService(provider, fetcher, log),
	}
}
