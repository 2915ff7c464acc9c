// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote config backend.
//
// The primary abstraction is [RemoteBackend], which decouples the provider
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPBackend]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] / [errors.As] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for 401,
// [*ThrottleError] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-config-keeper/models"
)

//go:generate mockgen -destination=../mock/remote_backend_mock.go -package=mock github.com/MKhiriev/go-config-keeper/internal/adapter RemoteBackend

// FetchConfigResult is the outcome of a single successful fetch round-trip.
type FetchConfigResult struct {
	// Entries is the full configuration set, keyed by namespace then key.
	// Nil when NotModified is true.
	Entries models.RemoteEntries

	// ETag is the entity tag of the delivered configuration set, to be
	// replayed on the next fetch for 304 handling.
	ETag string

	// NotModified is true when the backend answered 304: the caller's cached
	// configuration identified by the request etag is still current.
	NotModified bool

	// FetchID is the backend-assigned identifier of this fetch. Empty on a
	// 304 answer.
	FetchID string
}

// RemoteBackend defines transport-agnostic communication with the remote
// config backend. Implementations are responsible for serialisation,
// authentication token management, and mapping transport-level errors to the
// sentinel values defined in this package.
type RemoteBackend interface {
	// FetchConfig performs one fetch round-trip. etag is the entity tag of
	// the locally cached configuration, or empty when nothing is cached.
	// Returns ErrUnauthorized (wrapped) when the backend rejects the
	// credentials and *ThrottleError when the backend is throttling this
	// client.
	FetchConfig(ctx context.Context, req models.RemoteFetchRequest, etag string) (FetchConfigResult, error)
}
