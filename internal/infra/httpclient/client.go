package httpclient

import (
	"net/http"
	"time"

	"github.com/wordweaver-ai/wordweaver/internal/infra/logger"
)

type Options struct {
	// Timeout of zero means no client-side timeout.
	Timeout time.Duration
	Logger  *logger.Logger
}

// New returns the *http.Client handed to the provider SDK. Outbound calls are
// logged at debug level; retries are left to the caller.
func New(opts Options) *http.Client {
	var transport http.RoundTripper = http.DefaultTransport
	if opts.Logger != nil {
		transport = &loggingTransport{next: transport, logger: opts.Logger}
	}
	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
	}
}

type loggingTransport struct {
	next   http.RoundTripper
	logger *logger.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Debug("outbound request failed",
			"method", req.Method,
			"host", req.URL.Host,
			"path", req.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	t.logger.Debug("outbound request completed",
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}
