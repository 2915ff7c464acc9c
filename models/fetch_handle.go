package models

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// FetchHandle represents one asynchronous fetch operation. A handle starts in
// the Pending state and transitions to a terminal result exactly once;
// completion after the first one is ignored.
//
// Callers may poll Result, block on Done, or use Await. All methods are safe
// for concurrent use.
type FetchHandle struct {
	id   uuid.UUID
	done chan struct{}

	once sync.Once
	mu   sync.RWMutex
	res  FetchResult
}

// CompleteFunc delivers the terminal result of a fetch operation to its
// handle. Only the first invocation has any effect.
type CompleteFunc func(status FetchStatus, message string)

// NewFetchHandle creates a pending handle together with its completion
// function. The completion side stays with the fetch controller; the handle
// is what callers await.
func NewFetchHandle() (*FetchHandle, CompleteFunc) {
	h := &FetchHandle{
		id:   uuid.New(),
		done: make(chan struct{}),
		res:  FetchResult{Status: FetchStatusPending},
	}

	complete := func(status FetchStatus, message string) {
		h.once.Do(func() {
			h.mu.Lock()
			h.res = FetchResult{Status: status, Message: message}
			h.mu.Unlock()
			close(h.done)
		})
	}

	return h, complete
}

// ID returns the unique identifier of this fetch operation.
func (h *FetchHandle) ID() uuid.UUID {
	return h.id
}

// Done returns a channel that is closed when the handle reaches a terminal
// state. A handle that never completes (e.g. the "never fetched" handle)
// keeps the channel open forever.
func (h *FetchHandle) Done() <-chan struct{} {
	return h.done
}

// Result returns the current result snapshot: Pending until completion, then
// the terminal status and message.
func (h *FetchHandle) Result() FetchResult {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.res
}

// Await blocks until the handle completes or ctx is cancelled. On
// cancellation the (still pending) snapshot is returned together with the
// context error.
func (h *FetchHandle) Await(ctx context.Context) (FetchResult, error) {
	select {
	case <-h.done:
		return h.Result(), nil
	case <-ctx.Done():
		return h.Result(), ctx.Err()
	}
}
