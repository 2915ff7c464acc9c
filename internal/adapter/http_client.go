package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-config-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiryLeeway is subtracted from a token's exp claim so a token that is
// about to expire mid-request is refreshed up front.
const tokenExpiryLeeway = 30 * time.Second

type HTTPClientConfig struct {
	BaseURL  string
	Project  string
	APIKey   string
	ClientID string
	Timeout  time.Duration
}

type httpBackend struct {
	client   *resty.Client
	project  string
	apiKey   string
	clientID string

	mu    sync.RWMutex
	token string
}

// NewHTTPBackend creates a RemoteBackend speaking the HTTP/JSON protocol of
// the config backend. Zero-value config fields fall back to localhost and a
// 15 second timeout.
func NewHTTPBackend(cfg HTTPClientConfig) RemoteBackend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpBackend{
		client:   cli,
		project:  cfg.Project,
		apiKey:   cfg.APIKey,
		clientID: cfg.ClientID,
	}
}

func (h *httpBackend) FetchConfig(ctx context.Context, req models.RemoteFetchRequest, etag string) (FetchConfigResult, error) {
	token, err := h.ensureToken(ctx)
	if err != nil {
		return FetchConfigResult{}, err
	}

	if req.ClientID == "" {
		req.ClientID = h.clientID
	}

	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token).
		SetBody(req)
	if etag != "" {
		r.SetHeader("If-None-Match", etag)
	}

	resp, err := r.Post(fmt.Sprintf("/v1/projects/%s/config:fetch", h.project))
	if err != nil {
		return FetchConfigResult{}, fmt.Errorf("fetch request: %w", err)
	}

	if resp.StatusCode() == http.StatusNotModified {
		return FetchConfigResult{ETag: etag, NotModified: true}, nil
	}
	if err = h.mapHTTPError(resp); err != nil {
		return FetchConfigResult{}, err
	}

	var body models.RemoteFetchResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return FetchConfigResult{}, fmt.Errorf("decode fetch response: %w", err)
	}

	return FetchConfigResult{
		Entries: body.Entries,
		ETag:    resp.Header().Get("ETag"),
		FetchID: body.FetchID,
	}, nil
}

// ensureToken returns the cached bearer token, requesting a fresh one from
// the backend when none is cached or the cached one is about to expire.
func (h *httpBackend) ensureToken(ctx context.Context) (string, error) {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token != "" && !tokenExpired(token) {
		return token, nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RemoteTokenRequest{APIKey: h.apiKey, ClientID: h.clientID}).
		Post("/v1/token")
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return "", err
	}

	var body models.RemoteTokenResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("token response missing token")
	}

	h.mu.Lock()
	h.token = body.Token
	h.mu.Unlock()

	return body.Token, nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the backend's job, the client only needs to know
// whether re-authentication is due. Tokens that cannot be parsed are treated
// as expired.
func tokenExpired(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return true
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return time.Now().Add(tokenExpiryLeeway).After(exp.Time)
}

func (h *httpBackend) mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		h.mu.Lock()
		h.token = ""
		h.mu.Unlock()
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusTooManyRequests {
		return &ThrottleError{End: throttleEnd(resp)}
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// throttleEnd extracts the throttle expiry from a 429 response: the JSON body
// field takes precedence, then the Retry-After header, then a one minute
// fallback so callers always get a usable end time.
func throttleEnd(resp *resty.Response) time.Time {
	var body models.RemoteThrottleResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.ThrottleEndSeconds > 0 {
		return time.Unix(body.ThrottleEndSeconds, 0)
	}

	if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
		if secs, err := strconv.ParseInt(retryAfter, 10, 64); err == nil && secs > 0 {
			return time.Now().Add(time.Duration(secs) * time.Second)
		}
	}

	return time.Now().Add(time.Minute)
}
