package testutils

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type TestServer struct {
	*httptest.Server
	t *testing.T
}

func NewTestServer(t *testing.T, handler http.Handler) *TestServer {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &TestServer{
		Server: server,
		t:      t,
	}
}

// Do sends a request and returns the response with its body read.
func (ts *TestServer) Do(method, path string, body io.Reader, headers map[string]string) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(ts.t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(ts.t, err)
	return resp, string(raw)
}

func (ts *TestServer) GET(path string) (*http.Response, string) {
	return ts.Do(http.MethodGet, path, nil, nil)
}

func (ts *TestServer) POSTJSON(path, body string) (*http.Response, string) {
	return ts.Do(http.MethodPost, path, strings.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
}

func (ts *TestServer) POSTForm(path, body string) (*http.Response, string) {
	return ts.Do(http.MethodPost, path, bytes.NewBufferString(body), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
}
