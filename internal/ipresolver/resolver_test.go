package ipresolver_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sergeydigl3/do-runner-firewall/internal/ipresolver"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func withServer(t *testing.T, handler http.HandlerFunc, callback func(url string)) {
	t.Helper()
	server := httptest.NewServer(handler)
	defer server.Close()
	callback(server.URL + "/ip")
}

func TestResolve_200(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ip", r.URL.Path)
		_, err := w.Write([]byte("203.0.113.5"))
		require.NoError(t, err)
	}, func(url string) {
		ip, err := ipresolver.New(url, time.Second, discard).Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.5", ip)
	})
}

func TestResolve_BodyNotTrimmed(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("203.0.113.5\n"))
	}, func(url string) {
		ip, err := ipresolver.New(url, time.Second, discard).Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.5\n", ip)
	})
}

func TestResolve_Err(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, func(url string) {
		ip, err := ipresolver.New(url, time.Second, discard).Resolve(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 503")
		assert.Empty(t, ip)
	})
}

func TestResolve_Timeout(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}, func(url string) {
		_, err := ipresolver.New(url, 50*time.Millisecond, discard).Resolve(context.Background())
		assert.Error(t, err)
	})
}
