// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the provider-owned persistence of fetched
// configuration (a local SQLite cache) and the in-memory defaults registry.
//
// The cache keeps the last activated configuration set and the fetch
// bookkeeping that must survive process restarts. Everything else the core
// tracks (defaults, throttle state, pending fetch handles) is in-memory only
// and reset on Terminate.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-config-keeper/models"
)

//go:generate mockgen -destination=../mock/cache_storage_mock.go -package=mock github.com/MKhiriev/go-config-keeper/internal/store CacheStorage

// FetchState is the persisted fetch bookkeeping of the local cache.
type FetchState struct {
	// LastFetchTime is the wall-clock time of the last successful fetch.
	// Zero when no fetch has ever succeeded.
	LastFetchTime time.Time

	// LastFetchStatus is the provider-level outcome of the most recent fetch
	// attempt.
	LastFetchStatus models.ProviderFetchStatus

	// ETag identifies the cached configuration set for 304 handling.
	ETag string
}

// CacheStorage is the contract for the provider's local fetch cache.
type CacheStorage interface {
	// Snapshot loads the cached configuration set and fetch state. A fresh
	// cache returns empty entries and a zero FetchState, not an error.
	Snapshot(ctx context.Context) (models.RemoteEntries, FetchState, error)

	// ReplaceConfig atomically replaces the entire cached configuration set
	// and the fetch state in a single transaction.
	ReplaceConfig(ctx context.Context, entries models.RemoteEntries, state FetchState) error

	// SaveFetchState updates only the fetch bookkeeping, leaving the cached
	// entries untouched. Used for failed fetches and 304 answers.
	SaveFetchState(ctx context.Context, state FetchState) error

	// Close releases the underlying database handle.
	Close() error
}
