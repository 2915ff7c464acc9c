package store

import "sync"

// DefaultsRegistry records, per namespace, which keys were supplied via
// SetDefaults and in what order. It is consulted by the keyspace service to
// make defaults-only keys discoverable alongside provider-reported keys.
//
// The registry holds keys only; the default values themselves live in the
// provider. Each Replace call discards the previous key set for the
// namespace, matching SetDefaults' replace-not-merge semantics.
type DefaultsRegistry struct {
	mu   sync.RWMutex
	keys map[string][]string
}

func NewDefaultsRegistry() *DefaultsRegistry {
	return &DefaultsRegistry{keys: make(map[string][]string)}
}

// Replace installs keys as the complete default key set for namespace,
// discarding whatever was registered before. The slice is copied.
func (r *DefaultsRegistry) Replace(namespace string, keys []string) {
	copied := make([]string, len(keys))
	copy(copied, keys)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[namespace] = copied
}

// Keys returns the registered keys for namespace in registration order.
// The returned slice is a copy; callers may mutate it freely.
func (r *DefaultsRegistry) Keys(namespace string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := r.keys[namespace]
	copied := make([]string, len(keys))
	copy(copied, keys)
	return copied
}

// Reset discards all registered defaults for every namespace.
func (r *DefaultsRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = make(map[string][]string)
}
