package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/mock"
	"github.com/MKhiriev/go-config-keeper/internal/store"
	"github.com/MKhiriev/go-config-keeper/models"
)

func TestDefaultsService_SetDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	registry := store.NewDefaultsRegistry()

	provider.EXPECT().SetDefaults("prod", map[string]string{
		"greeting": "hello",
		"enabled":  "true",
		"retries":  "3",
		"ratio":    "0.5",
		"payload":  "raw-bytes",
	})

	err := NewDefaultsService(provider, registry, logger.Nop()).SetDefaults("prod", []models.Default{
		{Key: "greeting", Value: "hello"},
		{Key: "enabled", Value: true},
		{Key: "retries", Value: int64(3)},
		{Key: "ratio", Value: 0.5},
		{Key: "payload", Value: []byte("raw-bytes")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"greeting", "enabled", "retries", "ratio", "payload"}, registry.Keys("prod"))
}

func TestDefaultsService_UnsupportedKindSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	registry := store.NewDefaultsRegistry()

	// The struct entry is dropped; its neighbors still go through.
	provider.EXPECT().SetDefaults("", map[string]string{
		"before": "1",
		"after":  "2",
	})

	err := NewDefaultsService(provider, registry, logger.Nop()).SetDefaults("", []models.Default{
		{Key: "before", Value: 1},
		{Key: "broken", Value: struct{ X int }{X: 7}},
		{Key: "after", Value: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"before", "after"}, registry.Keys(""))
}

func TestDefaultsService_DuplicateKeyLastValueWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	registry := store.NewDefaultsRegistry()

	provider.EXPECT().SetDefaults("", map[string]string{"timeout": "30"})

	err := NewDefaultsService(provider, registry, logger.Nop()).SetDefaults("", []models.Default{
		{Key: "timeout", Value: 10},
		{Key: "timeout", Value: 30},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"timeout"}, registry.Keys(""))
}

func TestDefaultsService_ReplacesPreviousSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	registry := store.NewDefaultsRegistry()
	svc := NewDefaultsService(provider, registry, logger.Nop())

	provider.EXPECT().SetDefaults("", map[string]string{"old": "1"})
	require.NoError(t, svc.SetDefaults("", []models.Default{{Key: "old", Value: 1}}))

	provider.EXPECT().SetDefaults("", map[string]string{"new": "2"})
	require.NoError(t, svc.SetDefaults("", []models.Default{{Key: "new", Value: 2}}))

	assert.Equal(t, []string{"new"}, registry.Keys(""))
}

func TestStringifyDefault(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   string
		wantOK bool
	}{
		{name: "string", value: "x", want: "x", wantOK: true},
		{name: "bool", value: false, want: "false", wantOK: true},
		{name: "int", value: 7, want: "7", wantOK: true},
		{name: "int32", value: int32(-5), want: "-5", wantOK: true},
		{name: "int64", value: int64(1 << 40), want: "1099511627776", wantOK: true},
		{name: "float64", value: 2.5, want: "2.5", wantOK: true},
		{name: "bytes", value: []byte("ab"), want: "ab", wantOK: true},
		{name: "nil", value: nil, want: "", wantOK: false},
		{name: "map", value: map[string]string{}, want: "", wantOK: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := stringifyDefault(test.value)
			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.want, got)
		})
	}
}
