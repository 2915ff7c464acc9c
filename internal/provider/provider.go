// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider implements the service.Provider capability over a remote
// backend adapter and the local SQLite fetch cache.
//
// The provider owns three value planes: the activated remote config (loaded
// from the cache at startup, replaced on every successful fetch), the
// per-namespace application defaults, and the implicit static fallback.
// ResolveValue applies the Remote > Default > Static priority across them.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-config-keeper/internal/adapter"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/service"
	"github.com/MKhiriev/go-config-keeper/internal/store"
	"github.com/MKhiriev/go-config-keeper/models"
)

// ErrUnknownSetting is returned when a ConfigSetting outside the declared
// enumeration is read or written.
var ErrUnknownSetting = errors.New("unknown config setting")

// Config carries the provider's collaborators.
type Config struct {
	Backend adapter.RemoteBackend
	Cache   store.CacheStorage
	Logger  *logger.Logger

	// ClientID identifies this installation to the backend.
	ClientID string
}

type provider struct {
	backend  adapter.RemoteBackend
	cache    store.CacheStorage
	logger   *logger.Logger
	clientID string

	mu       sync.RWMutex
	active   models.RemoteEntries
	defaults map[string]map[string]string
	state    store.FetchState
	settings map[models.ConfigSetting]string
}

// New creates a provider and loads the previously activated configuration
// from the cache, so values fetched in an earlier process run are resolvable
// before the first fetch of this run.
func New(ctx context.Context, cfg Config) (service.Provider, error) {
	entries, state, err := cfg.Cache.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cache snapshot: %w", err)
	}
	if entries == nil {
		entries = models.RemoteEntries{}
	}

	cfg.Logger.Debug().
		Int("namespaces", len(entries)).
		Str("last_fetch_status", state.LastFetchStatus.String()).
		Msg("provider restored from cache")

	return &provider{
		backend:  cfg.Backend,
		cache:    cfg.Cache,
		logger:   cfg.Logger,
		clientID: cfg.ClientID,
		active:   entries,
		defaults: make(map[string]map[string]string),
		state:    state,
		settings: map[models.ConfigSetting]string{
			models.ConfigSettingDeveloperMode: models.SettingDisabled,
		},
	}, nil
}

func (p *provider) Fetch(ctx context.Context, cacheExpiration time.Duration) error {
	p.mu.RLock()
	state := p.state
	developerMode := p.settings[models.ConfigSettingDeveloperMode] == models.SettingEnabled
	p.mu.RUnlock()

	if !developerMode && cacheFresh(state, cacheExpiration) {
		p.logger.Debug().
			Dur("cache_expiration", cacheExpiration).
			Time("last_fetch", state.LastFetchTime).
			Msg("cached config still fresh, skipping network fetch")
		return nil
	}

	result, err := p.backend.FetchConfig(ctx, models.RemoteFetchRequest{
		ClientID:               p.clientID,
		CacheExpirationSeconds: int64(cacheExpiration / time.Second),
	}, state.ETag)
	if err != nil {
		p.recordFailure(ctx, err)
		return fmt.Errorf("fetch config: %w", err)
	}

	now := time.Now()

	if result.NotModified {
		p.mu.Lock()
		p.state.LastFetchTime = now
		p.state.LastFetchStatus = models.ProviderFetchSuccess
		state = p.state
		p.mu.Unlock()

		p.persistState(ctx, state)
		return nil
	}

	entries := result.Entries
	if entries == nil {
		entries = models.RemoteEntries{}
	}

	newState := store.FetchState{
		LastFetchTime:   now,
		LastFetchStatus: models.ProviderFetchSuccess,
		ETag:            result.ETag,
	}

	// Activate in memory first: a cache persistence failure degrades
	// durability, not the fetch itself.
	p.mu.Lock()
	p.active = entries
	p.state = newState
	p.mu.Unlock()

	if err = p.cache.ReplaceConfig(ctx, entries, newState); err != nil {
		p.logger.Error().Err(err).Msg("failed to persist fetched config to cache")
	}

	p.logger.Debug().
		Str("fetch_id", result.FetchID).
		Int("namespaces", len(entries)).
		Msg("fetched and activated remote config")
	return nil
}

func (p *provider) ResolveValue(key, namespace string) models.Value {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if data, ok := p.active[namespace][key]; ok {
		return models.Value{Data: data, Source: models.SourceRemote}
	}
	if data, ok := p.defaults[namespace][key]; ok {
		return models.Value{Data: data, Source: models.SourceDefault}
	}
	return models.Value{Source: models.SourceStatic}
}

func (p *provider) ListKeys(prefix, namespace string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.active[namespace]))
	for key := range p.active[namespace] {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (p *provider) SetDefaults(namespace string, defaults map[string]string) {
	copied := make(map[string]string, len(defaults))
	for key, value := range defaults {
		copied[key] = value
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.defaults[namespace] = copied
}

func (p *provider) LastFetchTime() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.LastFetchTime
}

func (p *provider) LastFetchStatus() models.ProviderFetchStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.LastFetchStatus
}

func (p *provider) ConfigSetting(setting models.ConfigSetting) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	value, ok := p.settings[setting]
	if !ok {
		p.logger.Error().Int("setting", int(setting)).Msg("read of unknown config setting")
		return "", ErrUnknownSetting
	}
	return value, nil
}

func (p *provider) SetConfigSetting(setting models.ConfigSetting, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.settings[setting]; !ok {
		p.logger.Error().Int("setting", int(setting)).Msg("write of unknown config setting")
		return ErrUnknownSetting
	}
	p.settings[setting] = value
	return nil
}

func (p *provider) Close() error {
	return p.cache.Close()
}

// recordFailure updates the fetch bookkeeping after a failed round-trip.
// LastFetchTime is left untouched: it tracks successful fetches only.
func (p *provider) recordFailure(ctx context.Context, fetchErr error) {
	status := models.ProviderFetchFailure

	var throttle *adapter.ThrottleError
	if errors.As(fetchErr, &throttle) {
		status = models.ProviderFetchThrottled
	}

	p.mu.Lock()
	p.state.LastFetchStatus = status
	state := p.state
	p.mu.Unlock()

	p.persistState(ctx, state)
}

func (p *provider) persistState(ctx context.Context, state store.FetchState) {
	if err := p.cache.SaveFetchState(ctx, state); err != nil {
		p.logger.Error().Err(err).Msg("failed to persist fetch state to cache")
	}
}

func cacheFresh(state store.FetchState, cacheExpiration time.Duration) bool {
	if state.LastFetchStatus != models.ProviderFetchSuccess || state.LastFetchTime.IsZero() {
		return false
	}
	return time.Since(state.LastFetchTime) < cacheExpiration
}
