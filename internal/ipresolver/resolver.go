package ipresolver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// DefaultURL returns the caller's public address as plain text.
const DefaultURL = "https://ifconfig.me/ip"

// maxBodySize bounds how much of the echo response is read.
const maxBodySize = 1 << 10

// Resolver looks up the public IP address of the current host.
type Resolver struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// New creates a resolver querying url with the given request timeout.
func New(url string, timeout time.Duration, logger *slog.Logger) *Resolver {
	if url == "" {
		url = DefaultURL
	}

	return &Resolver{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Resolve returns the response body of the echo service as is.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to build request")
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "failed to query %s", r.url)
	}
	defer resp.Body.Close()

	r.logger.Debug("ip echo response",
		slog.String("url", r.url),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("unexpected status %d from %s", resp.StatusCode, r.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", errors.Wrapf(err, "failed to read response from %s", r.url)
	}

	return string(body), nil
}
