package models

// Wire types exchanged with the remote config backend over HTTP/JSON.

// RemoteEntries maps namespace → key → textual value, the shape in which the
// backend delivers a full configuration set.
type RemoteEntries map[string]map[string]string

// RemoteFetchRequest is the JSON body of a fetch call.
type RemoteFetchRequest struct {
	// ClientID identifies the installation so the backend can scope
	// throttling and experiment bucketing per client.
	ClientID string `json:"client_id,omitempty"`

	// CacheExpirationSeconds is the freshness hint the application passed to
	// Fetch. The backend may use it to serve a cached snapshot.
	CacheExpirationSeconds int64 `json:"cache_expiration_seconds,omitempty"`
}

// RemoteFetchResponse is the JSON body of a successful fetch call.
type RemoteFetchResponse struct {
	Entries RemoteEntries `json:"entries"`

	// FetchID is the backend-assigned identifier of this fetch, useful for
	// support correlation. Informational only.
	FetchID string `json:"fetch_id,omitempty"`
}

// RemoteThrottleResponse is the JSON body accompanying an HTTP 429.
type RemoteThrottleResponse struct {
	// ThrottleEndSeconds is the epoch-second time until which the backend
	// will keep rejecting fetches from this client.
	ThrottleEndSeconds int64 `json:"throttle_end_seconds"`
}

// RemoteTokenRequest is the JSON body of a token call.
type RemoteTokenRequest struct {
	APIKey   string `json:"api_key"`
	ClientID string `json:"client_id,omitempty"`
}

// RemoteTokenResponse is the JSON body of a successful token call.
type RemoteTokenResponse struct {
	Token string `json:"token"`
}
