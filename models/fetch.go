package models

// FetchStatus is the status of an asynchronous fetch operation handle.
// A handle starts Pending and transitions exactly once to Success or Failure.
type FetchStatus int

const (
	// FetchStatusPending means the fetch has not completed yet, or no fetch
	// has ever been issued.
	FetchStatusPending FetchStatus = iota

	// FetchStatusSuccess means the fetch completed and new or unchanged
	// config data is available.
	FetchStatusSuccess

	// FetchStatusFailure means the fetch completed with an error; the
	// handle's message describes it.
	FetchStatusFailure
)

// String returns the canonical lower-case name of the status.
func (s FetchStatus) String() string {
	switch s {
	case FetchStatusPending:
		return "pending"
	case FetchStatusSuccess:
		return "success"
	case FetchStatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// FetchFailureReason qualifies a FetchStatusFailure in ConfigInfo.
type FetchFailureReason int

const (
	// FetchFailureReasonInvalid means the reason is not applicable: either no
	// fetch has happened yet or the last fetch succeeded.
	FetchFailureReasonInvalid FetchFailureReason = iota

	// FetchFailureReasonError marks a generic fetch failure.
	FetchFailureReasonError

	// FetchFailureReasonThrottled marks a fetch rejected by the backend due
	// to request throttling; ConfigInfo.ThrottledEndTimeMillis says when
	// fetching may resume.
	FetchFailureReasonThrottled
)

// String returns the canonical lower-case name of the reason.
func (r FetchFailureReason) String() string {
	switch r {
	case FetchFailureReasonInvalid:
		return "invalid"
	case FetchFailureReasonError:
		return "error"
	case FetchFailureReasonThrottled:
		return "throttled"
	default:
		return "unknown"
	}
}

// ProviderFetchStatus is the provider-level record of the most recent fetch
// outcome, independent of any still-pending operation handles.
type ProviderFetchStatus int

const (
	// ProviderFetchNone means no fetch has been attempted since the provider
	// was created.
	ProviderFetchNone ProviderFetchStatus = iota

	// ProviderFetchSuccess means the last fetch succeeded.
	ProviderFetchSuccess

	// ProviderFetchFailure means the last fetch failed for a non-throttling
	// reason.
	ProviderFetchFailure

	// ProviderFetchThrottled means the last fetch was rejected by backend
	// throttling.
	ProviderFetchThrottled
)

// String returns the canonical lower-case name of the status.
func (s ProviderFetchStatus) String() string {
	switch s {
	case ProviderFetchNone:
		return "none"
	case ProviderFetchSuccess:
		return "success"
	case ProviderFetchFailure:
		return "failure"
	case ProviderFetchThrottled:
		return "throttled"
	default:
		return "unknown"
	}
}

// FetchResult is the terminal (or still-pending) outcome of a single fetch
// operation handle.
type FetchResult struct {
	// Status is Pending until the operation completes, then Success or
	// Failure, never changing again.
	Status FetchStatus

	// Message is a human-readable failure description. Empty unless Status
	// is FetchStatusFailure.
	Message string
}
