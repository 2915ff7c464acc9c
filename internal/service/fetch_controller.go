package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-config-keeper/internal/adapter"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
)

type fetchController struct {
	provider Provider
	logger   *logger.Logger

	// neverFetched is handed out by LastResult before any Fetch call. It is
	// never completed, so callers observe a permanently pending operation.
	neverFetched *models.FetchHandle

	mu           sync.RWMutex
	last         *models.FetchHandle
	throttledEnd time.Time
}

// NewFetchController creates the FetchService. Each Fetch call gets its own
// handle; LastResult always reflects the most recently issued fetch.
func NewFetchController(provider Provider, log *logger.Logger) FetchService {
	neverFetched, _ := models.NewFetchHandle()
	return &fetchController{
		provider:     provider,
		logger:       log,
		neverFetched: neverFetched,
	}
}

func (c *fetchController) Fetch(ctx context.Context, cacheExpiration time.Duration) *models.FetchHandle {
	if cacheExpiration <= 0 {
		cacheExpiration = DefaultCacheExpiration
	}

	handle, complete := models.NewFetchHandle()

	c.mu.Lock()
	c.last = handle
	c.mu.Unlock()

	go c.run(ctx, handle, complete, cacheExpiration)

	return handle
}

// run drives one fetch to its terminal state. The handle is completed exactly
// once; throttle expiry updates happen before completion so a caller woken by
// Done() already observes the new throttle state via GetInfo.
func (c *fetchController) run(ctx context.Context, handle *models.FetchHandle, complete models.CompleteFunc, cacheExpiration time.Duration) {
	err := c.provider.Fetch(ctx, cacheExpiration)

	if err != nil {
		var throttle *adapter.ThrottleError
		if errors.As(err, &throttle) {
			c.mu.Lock()
			c.throttledEnd = throttle.End
			c.mu.Unlock()
		}

		c.logger.Debug().
			Str("fetch_id", handle.ID().String()).
			Err(err).
			Msg("fetch completed with failure")
		complete(models.FetchStatusFailure, err.Error())
		return
	}

	if status := c.provider.LastFetchStatus(); status != models.ProviderFetchSuccess {
		c.logger.Warn().
			Str("fetch_id", handle.ID().String()).
			Str("status", status.String()).
			Msg("provider reported non-success without error")
		complete(models.FetchStatusFailure, "fetch encountered an error")
		return
	}

	complete(models.FetchStatusSuccess, "")
}

func (c *fetchController) LastResult() *models.FetchHandle {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.last == nil {
		return c.neverFetched
	}
	return c.last
}

func (c *fetchController) ThrottledEndTime() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.throttledEnd
}
