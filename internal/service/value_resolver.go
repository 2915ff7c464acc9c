package service

import (
	"github.com/MKhiriev/go-config-keeper/internal/convert"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
)

type valueResolver struct {
	provider Provider
	logger   *logger.Logger
}

// NewValueResolver creates the ValueService over the given provider. The
// provider supplies the effective value and its source; the resolver adds the
// typed coercion and the conversion-validity flag.
func NewValueResolver(provider Provider, log *logger.Logger) ValueService {
	return &valueResolver{provider: provider, logger: log}
}

func (r *valueResolver) GetBoolean(key, namespace string) (bool, models.ValueInfo) {
	value := r.provider.ResolveValue(key, namespace)
	coerced := convert.ToBool(value.Data)
	return coerced, r.valueInfo(value, key, convert.BoolValid(value.Data, coerced))
}

func (r *valueResolver) GetLong(key, namespace string) (int64, models.ValueInfo) {
	value := r.provider.ResolveValue(key, namespace)
	return convert.ToLong(value.Data), r.valueInfo(value, key, convert.LongValid(value.Data))
}

func (r *valueResolver) GetDouble(key, namespace string) (float64, models.ValueInfo) {
	value := r.provider.ResolveValue(key, namespace)
	return convert.ToDouble(value.Data), r.valueInfo(value, key, convert.DoubleValid(value.Data))
}

func (r *valueResolver) GetString(key, namespace string) (string, models.ValueInfo) {
	value := r.provider.ResolveValue(key, namespace)
	return value.Data, r.valueInfo(value, key, true)
}

func (r *valueResolver) GetData(key, namespace string) ([]byte, models.ValueInfo) {
	value := r.provider.ResolveValue(key, namespace)
	return value.Bytes(), r.valueInfo(value, key, true)
}

// valueInfo assembles the provenance metadata for a lookup. A source the
// provider reports outside the known enumeration degrades to Static with the
// conversion marked unsuccessful; the lookup itself still returns a value.
func (r *valueResolver) valueInfo(value models.Value, key string, valid bool) models.ValueInfo {
	if !value.Source.Valid() {
		r.logger.Warn().
			Str("key", key).
			Int("source", int(value.Source)).
			Msg("provider returned unrecognized value source")
		return models.ValueInfo{Source: models.SourceStatic, ConversionSuccessful: false}
	}

	return models.ValueInfo{Source: value.Source, ConversionSuccessful: valid}
}
