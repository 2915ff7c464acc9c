package service

import (
	"strings"

	"github.com/MKhiriev/go-config-keeper/internal/store"
)

type keySpace struct {
	provider Provider
	defaults *store.DefaultsRegistry
}

// NewKeySpace creates the KeySpaceService. Provider-reported keys come first
// so keys with live remote presence are never masked; defaults-only keys
// follow in registration order so stale defaults stay discoverable.
func NewKeySpace(provider Provider, defaults *store.DefaultsRegistry) KeySpaceService {
	return &keySpace{provider: provider, defaults: defaults}
}

func (k *keySpace) Keys(namespace string) []string {
	return k.KeysByPrefix("", namespace)
}

func (k *keySpace) KeysByPrefix(prefix, namespace string) []string {
	providerKeys := k.provider.ListKeys(prefix, namespace)

	result := make([]string, 0, len(providerKeys))
	seen := make(map[string]struct{}, len(providerKeys))

	for _, key := range providerKeys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}

	for _, key := range k.defaults.Keys(namespace) {
		if _, ok := seen[key]; ok {
			continue
		}
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}

	return result
}
