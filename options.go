// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configkeeper

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures a Client. The zero value is usable for local
// development: it targets a devserver on localhost with an in-memory cache.
type Options struct {
	// BaseURL is the root URL of the remote config backend.
	// Defaults to "http://localhost:8080".
	BaseURL string

	// Project is the backend project whose configuration is fetched.
	Project string

	// APIKey authenticates the client against the backend's token endpoint.
	APIKey string

	// ClientID identifies this installation for throttling and experiment
	// bucketing. A random UUID is generated when empty.
	ClientID string

	// CachePath is the SQLite file holding the fetched-config cache.
	// Defaults to ":memory:" (no persistence across restarts).
	CachePath string

	// Timeout bounds each HTTP round-trip to the backend.
	// Defaults to 15 seconds.
	Timeout time.Duration

	// Logger receives the SDK's structured logs. When nil a JSON logger
	// writing to stdout is created.
	Logger *zerolog.Logger
}

func (o *Options) withDefaults() Options {
	opts := *o
	if opts.ClientID == "" {
		opts.ClientID = uuid.NewString()
	}
	if opts.CachePath == "" {
		opts.CachePath = ":memory:"
	}
	return opts
}

// GetOption adjusts a single lookup or defaults call.
type GetOption func(*getOptions)

type getOptions struct {
	namespace string
}

// WithNamespace scopes the call to the given namespace. Namespaces are
// independent key spaces; omitting the option targets the root namespace
// (the empty identifier).
func WithNamespace(namespace string) GetOption {
	return func(o *getOptions) {
		o.namespace = namespace
	}
}

func applyGetOptions(opts []GetOption) getOptions {
	var o getOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
