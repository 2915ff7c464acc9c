// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package configkeeper is a client-side remote configuration resolver: it
// fetches a key/value configuration set from a remote backend, caches it
// locally, merges it with application-supplied defaults, and exposes typed,
// provenance-tagged accessors.
//
// Typical use:
//
//	client := configkeeper.New(configkeeper.Options{
//		BaseURL: "https://config.example.com",
//		Project: "my-project",
//		APIKey:  apiKey,
//	})
//	if err := client.Initialize(ctx); err != nil { ... }
//	defer client.Terminate()
//
//	_ = client.SetDefaultsFromMap(map[string]any{"greeting": "hello"})
//	handle, _ := client.Fetch(ctx)
//	_, _ = handle.Await(ctx)
//	greeting, info, _ := client.GetString("greeting")
package configkeeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-config-keeper/internal/adapter"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/provider"
	"github.com/MKhiriev/go-config-keeper/internal/service"
	"github.com/MKhiriev/go-config-keeper/internal/store"
	"github.com/MKhiriev/go-config-keeper/models"
)

// ErrNotInitialized is returned by every operation invoked before Initialize
// or after Terminate, together with the type's zero value.
var ErrNotInitialized = service.ErrNotInitialized

// DefaultCacheExpiration is the freshness hint used by Fetch when the
// application does not supply one.
const DefaultCacheExpiration = service.DefaultCacheExpiration

// Client is a remote config client instance. Multiple independent clients may
// coexist in one process; each owns its defaults registry, throttle state,
// and fetch cache. All methods are safe for concurrent use.
type Client struct {
	opts     Options
	logger   *logger.Logger
	registry *store.DefaultsRegistry

	mu          sync.RWMutex
	initialized bool
	provider    service.Provider
	services    *service.Services

	// newProvider overrides provider construction in tests.
	newProvider func(ctx context.Context) (service.Provider, error)
}

// New creates a Client. No resources are acquired until Initialize.
func New(opts Options) *Client {
	opts = opts.withDefaults()

	var log *logger.Logger
	if opts.Logger != nil {
		log = &logger.Logger{Logger: *opts.Logger}
	} else {
		log = logger.NewLogger("configkeeper")
	}

	return &Client{
		opts:     opts,
		logger:   log,
		registry: store.NewDefaultsRegistry(),
	}
}

// Initialize acquires the client's resources: it opens the local fetch cache,
// restores the previously activated configuration, and wires the resolution
// services. Initialize is idempotent — a second call warns and returns nil
// without duplicating or resetting any state (registered defaults survive).
func (c *Client) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		c.logger.Warn().Msg("client already initialized, ignoring repeated Initialize")
		return nil
	}

	build := c.newProvider
	if build == nil {
		build = c.buildProvider
	}

	prov, err := build(ctx)
	if err != nil {
		return fmt.Errorf("initialize remote config client: %w", err)
	}

	c.provider = prov
	c.services = service.NewServices(prov, c.registry, c.logger)
	c.initialized = true

	c.logger.Debug().Str("project", c.opts.Project).Msg("remote config client initialized")
	return nil
}

func (c *Client) buildProvider(ctx context.Context) (service.Provider, error) {
	db, err := store.NewConnectSQLite(ctx, c.opts.CachePath, c.logger)
	if err != nil {
		return nil, err
	}

	backend := adapter.NewHTTPBackend(adapter.HTTPClientConfig{
		BaseURL:  c.opts.BaseURL,
		Project:  c.opts.Project,
		APIKey:   c.opts.APIKey,
		ClientID: c.opts.ClientID,
		Timeout:  c.opts.Timeout,
	})

	return provider.New(ctx, provider.Config{
		Backend:  backend,
		Cache:    store.NewCacheRepository(db, c.logger),
		Logger:   c.logger,
		ClientID: c.opts.ClientID,
	})
}

// Terminate releases the client's resources and resets all in-memory state:
// the defaults registry, the throttle state, and the last fetch result. It is
// idempotent; terminating a never-initialized client is a no-op. The client
// may be initialized again afterwards.
func (c *Client) Terminate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil
	}

	err := c.provider.Close()
	if err != nil {
		c.logger.Error().Err(err).Msg("error closing provider during Terminate")
	}

	c.provider = nil
	c.services = nil
	c.initialized = false
	c.registry.Reset()

	return err
}

// SetDefaults replaces the default value set for the target namespace with
// exactly the given entries; defaults registered earlier for that namespace
// are discarded. Entries whose value kind is unsupported are skipped with a
// warning, and the remaining entries still apply.
func (c *Client) SetDefaults(defaults []models.Default, opts ...GetOption) error {
	svcs, err := c.servicesRef()
	if err != nil {
		return err
	}
	return svcs.Defaults.SetDefaults(applyGetOptions(opts).namespace, defaults)
}

// SetDefaultsFromMap is SetDefaults with map input; keys are applied in
// sorted order to keep the registry's registration order deterministic.
func (c *Client) SetDefaultsFromMap(defaults map[string]any, opts ...GetOption) error {
	return c.SetDefaults(models.DefaultsFromMap(defaults), opts...)
}

// GetBoolean resolves key to a boolean. The returned ValueInfo carries the
// value's source and whether its textual form is a trustworthy boolean.
func (c *Client) GetBoolean(key string, opts ...GetOption) (bool, models.ValueInfo, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return false, models.ValueInfo{}, err
	}
	value, info := svcs.Values.GetBoolean(key, applyGetOptions(opts).namespace)
	return value, info, nil
}

// GetLong resolves key to an int64. Conversion is valid only for plain
// unsigned decimal text; a best-effort value is returned regardless.
func (c *Client) GetLong(key string, opts ...GetOption) (int64, models.ValueInfo, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return 0, models.ValueInfo{}, err
	}
	value, info := svcs.Values.GetLong(key, applyGetOptions(opts).namespace)
	return value, info, nil
}

// GetDouble resolves key to a float64.
func (c *Client) GetDouble(key string, opts ...GetOption) (float64, models.ValueInfo, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return 0, models.ValueInfo{}, err
	}
	value, info := svcs.Values.GetDouble(key, applyGetOptions(opts).namespace)
	return value, info, nil
}

// GetString resolves key to its textual form. String conversion always
// succeeds.
func (c *Client) GetString(key string, opts ...GetOption) (string, models.ValueInfo, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return "", models.ValueInfo{}, err
	}
	value, info := svcs.Values.GetString(key, applyGetOptions(opts).namespace)
	return value, info, nil
}

// GetData resolves key to its raw bytes. Data conversion always succeeds.
func (c *Client) GetData(key string, opts ...GetOption) ([]byte, models.ValueInfo, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return nil, models.ValueInfo{}, err
	}
	value, info := svcs.Values.GetData(key, applyGetOptions(opts).namespace)
	return value, info, nil
}

// GetKeys returns all keys visible in the target namespace: activated remote
// keys first, then registered defaults not already reported. No duplicates.
func (c *Client) GetKeys(opts ...GetOption) ([]string, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return nil, err
	}
	return svcs.KeySpace.Keys(applyGetOptions(opts).namespace), nil
}

// GetKeysByPrefix is GetKeys filtered to keys starting with prefix. An empty
// prefix matches everything.
func (c *Client) GetKeysByPrefix(prefix string, opts ...GetOption) ([]string, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return nil, err
	}
	return svcs.KeySpace.KeysByPrefix(prefix, applyGetOptions(opts).namespace), nil
}

// Fetch issues an asynchronous fetch with the default cache-expiration hint
// and returns its handle immediately. Fetch failures are delivered through
// the handle's terminal result, never synchronously.
func (c *Client) Fetch(ctx context.Context) (*models.FetchHandle, error) {
	return c.FetchWithExpiration(ctx, DefaultCacheExpiration)
}

// FetchWithExpiration is Fetch with an explicit freshness hint: when the
// cached configuration is younger than cacheExpiration the fetch may complete
// successfully without network traffic.
func (c *Client) FetchWithExpiration(ctx context.Context, cacheExpiration time.Duration) (*models.FetchHandle, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return nil, err
	}
	return svcs.Fetcher.Fetch(ctx, cacheExpiration), nil
}

// FetchLastResult returns the handle of the most recently issued fetch
// without triggering a new one. Before any fetch it returns a permanently
// pending handle.
func (c *Client) FetchLastResult() (*models.FetchHandle, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return nil, err
	}
	return svcs.Fetcher.LastResult(), nil
}

// GetInfo returns the fetch-lifecycle snapshot, recomputed on every call.
func (c *Client) GetInfo() (models.ConfigInfo, error) {
	svcs, err := c.servicesRef()
	if err != nil {
		return models.ConfigInfo{}, err
	}
	return svcs.Info.GetInfo(), nil
}

// GetConfigSetting reads a client-level setting. Unknown settings yield an
// empty string and an error, never a panic.
func (c *Client) GetConfigSetting(setting models.ConfigSetting) (string, error) {
	prov, err := c.providerRef()
	if err != nil {
		return "", err
	}
	return prov.ConfigSetting(setting)
}

// SetConfigSetting writes a client-level setting.
func (c *Client) SetConfigSetting(setting models.ConfigSetting, value string) error {
	prov, err := c.providerRef()
	if err != nil {
		return err
	}
	return prov.SetConfigSetting(setting, value)
}

func (c *Client) servicesRef() (*service.Services, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return nil, ErrNotInitialized
	}
	return c.services, nil
}

func (c *Client) providerRef() (service.Provider, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return nil, ErrNotInitialized
	}
	return c.provider, nil
}
