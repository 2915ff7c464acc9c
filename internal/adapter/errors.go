// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnauthorized is returned when the backend rejects the client's
	// credentials (HTTP 401). The cached auth token is discarded before the
	// error is returned, so a later retry re-authenticates from scratch.
	ErrUnauthorized = errors.New("client unauthorized")
)

// ThrottleError is returned when the backend rejects a fetch due to request
// throttling (HTTP 429). It carries the absolute time until which fetches
// are expected to keep being rejected.
type ThrottleError struct {
	// End is the throttle expiry; fetching may resume after this instant.
	End time.Time
}

// Error implements the error interface.
func (e *ThrottleError) Error() string {
	return fmt.Sprintf("fetch throttled until %s", e.End.UTC().Format(time.RFC3339))
}
