package service

import (
	"strconv"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/store"
	"github.com/MKhiriev/go-config-keeper/models"
)

type defaultsService struct {
	provider Provider
	registry *store.DefaultsRegistry
	logger   *logger.Logger
}

// NewDefaultsService creates the DefaultsService. Accepted entries are
// recorded in the registry (for key-space reconciliation) and forwarded to
// the provider as the namespace's complete default set.
func NewDefaultsService(provider Provider, registry *store.DefaultsRegistry, log *logger.Logger) DefaultsService {
	return &defaultsService{provider: provider, registry: registry, logger: log}
}

func (s *defaultsService) SetDefaults(namespace string, defaults []models.Default) error {
	accepted := make(map[string]string, len(defaults))
	keys := make([]string, 0, len(defaults))

	for _, entry := range defaults {
		text, ok := stringifyDefault(entry.Value)
		if !ok {
			// Non-fatal: skip the entry, keep processing the rest.
			s.logger.Warn().
				Str("key", entry.Key).
				Str("namespace", namespace).
				Msg("unsupported default value kind, entry skipped")
			continue
		}

		if _, dup := accepted[entry.Key]; !dup {
			keys = append(keys, entry.Key)
		}
		accepted[entry.Key] = text
	}

	s.registry.Replace(namespace, keys)
	s.provider.SetDefaults(namespace, accepted)

	return nil
}

// stringifyDefault converts a supported default value into its canonical
// textual form. The bool forms "true"/"false" are members of the canonical
// token sets, so a round trip through GetBoolean stays conversion-valid.
func stringifyDefault(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 64), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}
