package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordweaver-ai/wordweaver/internal/infra/logger"
)

func TestNew_PassesRequestsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	client := New(Options{Timeout: time.Second, Logger: logger.NewNop()})
	assert.Equal(t, time.Second, client.Timeout)

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func TestNew_TransportErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(Options{Logger: logger.NewNop()})
	_, err := client.Get(url)
	assert.Error(t, err)
}

func TestNew_NoLogger(t *testing.T) {
	client := New(Options{})
	assert.Equal(t, http.DefaultTransport, client.Transport)
	assert.Zero(t, client.Timeout)
}
