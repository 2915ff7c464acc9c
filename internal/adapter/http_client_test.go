package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-keeper/internal/devserver"
	"github.com/MKhiriev/go-config-keeper/models"
)

func newTestBackend(t *testing.T) (RemoteBackend, *devserver.Server) {
	t.Helper()

	fake := devserver.New(devserver.Config{Project: "demo", APIKey: "dev-key"})
	srv := httptest.NewServer(fake.Router())
	t.Cleanup(srv.Close)

	backend := NewHTTPBackend(HTTPClientConfig{
		BaseURL:  srv.URL,
		Project:  "demo",
		APIKey:   "dev-key",
		ClientID: "client-1",
	})
	return backend, fake
}

func TestHTTPBackend_FetchConfig(t *testing.T) {
	backend, fake := newTestBackend(t)
	fake.SetEntries(models.RemoteEntries{
		"":      {"greeting": "hello"},
		"audio": {"volume": "0.5"},
	})

	result, err := backend.FetchConfig(context.Background(), models.RemoteFetchRequest{}, "")
	require.NoError(t, err)

	assert.False(t, result.NotModified)
	assert.Equal(t, `"rev-1"`, result.ETag)
	assert.NotEmpty(t, result.FetchID)
	assert.Equal(t, models.RemoteEntries{
		"":      {"greeting": "hello"},
		"audio": {"volume": "0.5"},
	}, result.Entries)
}

func TestHTTPBackend_NotModified(t *testing.T) {
	backend, fake := newTestBackend(t)
	fake.SetEntries(models.RemoteEntries{"": {"greeting": "hello"}})

	first, err := backend.FetchConfig(context.Background(), models.RemoteFetchRequest{}, "")
	require.NoError(t, err)
	require.NotEmpty(t, first.ETag)

	second, err := backend.FetchConfig(context.Background(), models.RemoteFetchRequest{}, first.ETag)
	require.NoError(t, err)

	assert.True(t, second.NotModified)
	assert.Equal(t, first.ETag, second.ETag)
	assert.Nil(t, second.Entries)
}

func TestHTTPBackend_ChangedConfigInvalidatesETag(t *testing.T) {
	backend, fake := newTestBackend(t)
	fake.SetEntries(models.RemoteEntries{"": {"greeting": "hello"}})

	first, err := backend.FetchConfig(context.Background(), models.RemoteFetchRequest{}, "")
	require.NoError(t, err)

	fake.SetEntries(models.RemoteEntries{"": {"greeting": "updated"}})

	second, err := backend.FetchConfig(context.Background(), models.RemoteFetchRequest{}, first.ETag)
	require.NoError(t, err)

	assert.False(t, second.NotModified)
	assert.NotEqual(t, first.ETag, second.ETag)
	assert.Equal(t, "updated", second.Entries[""]["greeting"])
}

func TestHTTPBackend_Throttled(t *testing.T) {
	backend, fake := newTestBackend(t)

	end := time.Now().Add(time.Hour).Truncate(time.Second)
	fake.ThrottleUntil(end)

	_, err := backend.FetchConfig(context.Background(), models.RemoteFetchRequest{}, "")
	require.Error(t, err)

	var throttle *ThrottleError
	require.ErrorAs(t, err, &throttle)
	assert.True(t, end.Equal(throttle.End), "throttle end comes from the response body, second precision")
}

func TestHTTPBackend_WrongAPIKey(t *testing.T) {
	fake := devserver.New(devserver.Config{Project: "demo", APIKey: "dev-key"})
	srv := httptest.NewServer(fake.Router())
	t.Cleanup(srv.Close)

	backend := NewHTTPBackend(HTTPClientConfig{
		BaseURL: srv.URL,
		Project: "demo",
		APIKey:  "wrong-key",
	})

	_, err := backend.FetchConfig(context.Background(), models.RemoteFetchRequest{}, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPBackend_UnknownProject(t *testing.T) {
	fake := devserver.New(devserver.Config{Project: "demo", APIKey: "dev-key"})
	srv := httptest.NewServer(fake.Router())
	t.Cleanup(srv.Close)

	backend := NewHTTPBackend(HTTPClientConfig{
		BaseURL: srv.URL,
		Project: "other",
		APIKey:  "dev-key",
	})

	_, err := backend.FetchConfig(context.Background(), models.RemoteFetchRequest{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 404")
}

func TestHTTPBackend_TokenIsReused(t *testing.T) {
	var tokenRequests int

	fake := devserver.New(devserver.Config{Project: "demo", APIKey: "dev-key"})
	router := fake.Router()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/token" {
			tokenRequests++
		}
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	backend := NewHTTPBackend(HTTPClientConfig{
		BaseURL: srv.URL,
		Project: "demo",
		APIKey:  "dev-key",
	})

	for i := 0; i < 3; i++ {
		_, err := backend.FetchConfig(context.Background(), models.RemoteFetchRequest{}, "")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, tokenRequests)
}

func TestTokenExpired(t *testing.T) {
	fresh := devserver.New(devserver.Config{TokenTTL: time.Hour})
	srvFresh := httptest.NewServer(fresh.Router())
	t.Cleanup(srvFresh.Close)

	// A token inside the expiry leeway window must be treated as expired.
	short := devserver.New(devserver.Config{TokenTTL: 5 * time.Second})
	srvShort := httptest.NewServer(short.Router())
	t.Cleanup(srvShort.Close)

	assert.True(t, tokenExpired("not-a-jwt"))
	assert.True(t, tokenExpired(""))

	assert.False(t, tokenExpired(mintToken(t, srvFresh.URL)))
	assert.True(t, tokenExpired(mintToken(t, srvShort.URL)))
}

func mintToken(t *testing.T, baseURL string) string {
	t.Helper()

	backend := NewHTTPBackend(HTTPClientConfig{BaseURL: baseURL, APIKey: "dev-key"}).(*httpBackend)
	token, err := backend.ensureToken(context.Background())
	require.NoError(t, err)
	return token
}
