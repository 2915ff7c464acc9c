package models

import "sort"

// Default is a single application-supplied default entry for a configuration
// key. Value must be one of: string, bool, int, int32, int64, float32,
// float64, or []byte. Entries with any other value kind are skipped by
// SetDefaults with a per-key warning.
type Default struct {
	Key   string
	Value any
}

// DefaultsFromMap converts a plain map into an ordered Default slice. Map
// iteration order is not deterministic, so keys are sorted to keep the
// registry's registration order stable across runs.
func DefaultsFromMap(m map[string]any) []Default {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	defaults := make([]Default, 0, len(m))
	for _, k := range keys {
		defaults = append(defaults, Default{Key: k, Value: m[k]})
	}
	return defaults
}
