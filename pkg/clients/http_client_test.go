package clients

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestHTTPClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewHTTPClient(time.Second)
	req, err := http.NewRequest(http.MethodGet, srv.URL, http.NoBody)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestHTTPClient_DoError(t *testing.T) {
	c := NewHTTPClient(0)
	wantErr := errors.New("connection refused")
	c.SetClient(roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, wantErr
	}))

	req, err := http.NewRequest(http.MethodPost, "http://example.invalid/send", http.NoBody)
	require.NoError(t, err)

	resp, err := c.Do(req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, wantErr)
}
