package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-keeper/models"
)

func postJSON(t *testing.T, url string, body any, headers map[string]string) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func issueToken(t *testing.T, baseURL string) string {
	t.Helper()

	resp := postJSON(t, baseURL+"/v1/token",
		models.RemoteTokenRequest{APIKey: "dev-key", ClientID: "test"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.RemoteTokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestServer_TokenEndpoint(t *testing.T) {
	srv := httptest.NewServer(New(Config{}).Router())
	t.Cleanup(srv.Close)

	issueToken(t, srv.URL)

	resp := postJSON(t, srv.URL+"/v1/token",
		models.RemoteTokenRequest{APIKey: "wrong", ClientID: "test"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_TokenRejectsBadJSON(t *testing.T) {
	srv := httptest.NewServer(New(Config{}).Router())
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/v1/token", "application/json", strings.NewReader("{broken"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_FetchRequiresBearerToken(t *testing.T) {
	srv := httptest.NewServer(New(Config{}).Router())
	t.Cleanup(srv.Close)

	resp := postJSON(t, srv.URL+"/v1/projects/demo/config:fetch",
		models.RemoteFetchRequest{}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/v1/projects/demo/config:fetch",
		models.RemoteFetchRequest{}, map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_FetchFlow(t *testing.T) {
	fake := New(Config{})
	fake.SetEntries(models.RemoteEntries{"": {"greeting": "hello"}})

	srv := httptest.NewServer(fake.Router())
	t.Cleanup(srv.Close)

	token := issueToken(t, srv.URL)
	auth := map[string]string{"Authorization": "Bearer " + token}

	resp := postJSON(t, srv.URL+"/v1/projects/demo/config:fetch", models.RemoteFetchRequest{}, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	etag := resp.Header.Get("ETag")
	assert.Equal(t, `"rev-1"`, etag)

	var body models.RemoteFetchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "hello", body.Entries[""]["greeting"])
	assert.NotEmpty(t, body.FetchID)

	// Matching etag answers 304 without a body.
	auth["If-None-Match"] = etag
	resp = postJSON(t, srv.URL+"/v1/projects/demo/config:fetch", models.RemoteFetchRequest{}, auth)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	// A new revision invalidates the etag.
	fake.SetEntries(models.RemoteEntries{"": {"greeting": "updated"}})
	resp = postJSON(t, srv.URL+"/v1/projects/demo/config:fetch", models.RemoteFetchRequest{}, auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"rev-2"`, resp.Header.Get("ETag"))
}

func TestServer_UnknownProject(t *testing.T) {
	srv := httptest.NewServer(New(Config{}).Router())
	t.Cleanup(srv.Close)

	resp := postJSON(t, srv.URL+"/v1/projects/nope/config:fetch", models.RemoteFetchRequest{}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
