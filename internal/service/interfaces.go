// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the value-resolution and fetch-lifecycle core of
// the SDK: typed getters with provenance, the key space, defaults handling,
// the fetch controller, and the config-info aggregator.
//
// All services operate against the [Provider] capability, which owns the
// actual values and performs the network fetch. The services add the
// resolution semantics on top: coercion validity, key-set reconciliation with
// registered defaults, exactly-once fetch completion, and throttle tracking.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-config-keeper/models"
)

//go:generate mockgen -destination=../mock/provider_mock.go -package=mock github.com/MKhiriev/go-config-keeper/internal/service Provider

// DefaultCacheExpiration is the freshness hint used when the application does
// not pass one to Fetch: configuration fetched within this window is
// considered current and a Fetch call may be answered from the cache.
const DefaultCacheExpiration = 12 * time.Hour

// Provider is the capability that owns configuration values and performs the
// network fetch. It applies the Remote > Default > Static source priority
// when resolving values; the services never re-derive it.
type Provider interface {
	// Fetch performs one fetch attempt. cacheExpiration is the freshness
	// hint: when the cached config is younger, implementations may return
	// success without any network traffic. A throttling rejection is
	// reported as a *adapter.ThrottleError.
	Fetch(ctx context.Context, cacheExpiration time.Duration) error

	// ResolveValue returns the effective value and its source for the key in
	// the given namespace. Missing keys yield an empty static value, never
	// an error.
	ResolveValue(key, namespace string) models.Value

	// ListKeys returns the provider-known keys (activated remote config)
	// matching prefix within the namespace. An empty prefix matches all.
	ListKeys(prefix, namespace string) []string

	// SetDefaults installs defaults as the complete default set for the
	// namespace, replacing whatever was installed before.
	SetDefaults(namespace string, defaults map[string]string)

	// LastFetchTime is the wall-clock time of the last successful fetch,
	// zero when none has succeeded yet.
	LastFetchTime() time.Time

	// LastFetchStatus is the outcome of the most recent fetch attempt.
	LastFetchStatus() models.ProviderFetchStatus

	// ConfigSetting reads a client-level setting value.
	ConfigSetting(setting models.ConfigSetting) (string, error)

	// SetConfigSetting writes a client-level setting value.
	SetConfigSetting(setting models.ConfigSetting, value string) error

	// Close releases provider resources, including the local cache handle.
	Close() error
}

// ValueService resolves typed values with provenance metadata. The metadata
// is always computed; callers that do not care simply discard it.
type ValueService interface {
	GetBoolean(key, namespace string) (bool, models.ValueInfo)
	GetLong(key, namespace string) (int64, models.ValueInfo)
	GetDouble(key, namespace string) (float64, models.ValueInfo)
	GetString(key, namespace string) (string, models.ValueInfo)
	GetData(key, namespace string) ([]byte, models.ValueInfo)
}

// KeySpaceService computes the visible key set for a namespace: provider
// keys first, then registered defaults not already reported.
type KeySpaceService interface {
	// Keys returns all visible keys for the namespace, deduplicated.
	Keys(namespace string) []string

	// KeysByPrefix returns the visible keys whose name starts with prefix.
	// An empty prefix is equivalent to Keys.
	KeysByPrefix(prefix, namespace string) []string
}

// DefaultsService validates, records, and forwards application defaults.
type DefaultsService interface {
	// SetDefaults replaces the namespace's default set with the given
	// entries. Entries with unsupported value kinds are skipped with a
	// per-key warning; the remaining entries are still applied.
	SetDefaults(namespace string, defaults []models.Default) error
}

// FetchService drives asynchronous fetches and tracks throttle state.
type FetchService interface {
	// Fetch issues a new fetch and immediately returns its handle. The
	// handle completes exactly once when the provider call finishes.
	Fetch(ctx context.Context, cacheExpiration time.Duration) *models.FetchHandle

	// LastResult returns the handle of the most recently issued fetch
	// without triggering a new one. Safe to call before any fetch: it then
	// returns a permanently pending "never fetched" handle.
	LastResult() *models.FetchHandle

	// ThrottledEndTime is the most recent backend-reported throttle expiry,
	// zero when the client has never been throttled.
	ThrottledEndTime() time.Time
}

// InfoService exposes the ConfigInfo snapshot.
type InfoService interface {
	// GetInfo recomputes the snapshot from provider and fetch state on
	// every call.
	GetInfo() models.ConfigInfo
}
