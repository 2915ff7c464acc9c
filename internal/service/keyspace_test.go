package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-config-keeper/internal/mock"
	"github.com/MKhiriev/go-config-keeper/internal/store"
)

func TestKeySpace_Keys(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)

	registry := store.NewDefaultsRegistry()
	registry.Replace("prod", []string{"timeout", "greeting", "retries"})

	// "greeting" is known to both sides and must appear once, at its
	// provider position.
	provider.EXPECT().ListKeys("", "prod").Return([]string{"greeting", "endpoint"})

	keys := NewKeySpace(provider, registry).Keys("prod")

	assert.Equal(t, []string{"greeting", "endpoint", "timeout", "retries"}, keys)
}

func TestKeySpace_KeysByPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)

	registry := store.NewDefaultsRegistry()
	registry.Replace("", []string{"fx_volume", "music_volume", "fx_enabled"})

	provider.EXPECT().ListKeys("fx_", "").Return([]string{"fx_enabled"})

	keys := NewKeySpace(provider, registry).KeysByPrefix("fx_", "")

	// Defaults-only keys are prefix-filtered here; provider keys arrive
	// already filtered.
	assert.Equal(t, []string{"fx_enabled", "fx_volume"}, keys)
}

func TestKeySpace_EmptyEverywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	provider.EXPECT().ListKeys("", "stage").Return(nil)

	keys := NewKeySpace(provider, store.NewDefaultsRegistry()).Keys("stage")

	assert.Empty(t, keys)
}

func TestKeySpace_ProviderDuplicatesCollapsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	provider.EXPECT().ListKeys("", "").Return([]string{"a", "b", "a"})

	keys := NewKeySpace(provider, store.NewDefaultsRegistry()).Keys("")

	assert.Equal(t, []string{"a", "b"}, keys)
}
