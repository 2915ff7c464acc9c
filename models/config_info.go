package models

// ConfigInfo is a read-only snapshot of the fetch lifecycle state. It is
// recomputed from provider state on every GetInfo call and never cached.
type ConfigInfo struct {
	// FetchTimeMillis is the epoch-millisecond timestamp of the last
	// successful fetch, 0 if none has succeeded yet.
	FetchTimeMillis int64

	// LastFetchStatus reflects the most recent fetch outcome:
	// Pending when no fetch has been attempted, otherwise Success or Failure.
	LastFetchStatus FetchStatus

	// LastFetchFailureReason qualifies a Failure status; it is
	// FetchFailureReasonInvalid whenever LastFetchStatus is not Failure.
	LastFetchFailureReason FetchFailureReason

	// ThrottledEndTimeMillis is the epoch-millisecond time until which the
	// backend asked the client to back off, 0 if never throttled.
	ThrottledEndTimeMillis int64
}
