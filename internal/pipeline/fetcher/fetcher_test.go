package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Anxten/senti-quant/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

func TestFetchAllMixedOutcomes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("<html>page body</html>"))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	f := New(testLogger(t), 5*time.Second, 4)
	results := f.FetchAll(context.Background(), []string{
		server.URL + "/ok",
		server.URL + "/missing",
		server.URL + "/error",
	})

	require.Len(t, results, 3)

	assert.True(t, results[0].Available)
	assert.Equal(t, "<html>page body</html>", results[0].Body)

	// Non-200 statuses resolve to unavailable, never to a raised fault.
	assert.False(t, results[1].Available)
	assert.Empty(t, results[1].Body)
	assert.False(t, results[2].Available)
}

func TestFetchAllConnectionError(t *testing.T) {
	t.Parallel()

	f := New(testLogger(t), 1*time.Second, 2)
	results := f.FetchAll(context.Background(), []string{"http://127.0.0.1:1/unreachable"})

	require.Len(t, results, 1)
	assert.False(t, results[0].Available)
}

func TestFetchAllSendsBrowserHeaders(t *testing.T) {
	t.Parallel()

	var userAgent atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent.Store(r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	f := New(testLogger(t), 5*time.Second, 1)
	f.FetchAll(context.Background(), []string{server.URL})

	assert.Contains(t, userAgent.Load().(string), "Mozilla/5.0")
}

func TestFetchAllBoundsConcurrency(t *testing.T) {
	t.Parallel()

	var inFlight, peak int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := atomic.AddInt32(&inFlight, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if current <= old || atomic.CompareAndSwapInt32(&peak, old, current) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	f := New(testLogger(t), 5*time.Second, 2)

	urls := make([]string, 8)
	for i := range urls {
		urls[i] = server.URL
	}
	results := f.FetchAll(context.Background(), urls)

	require.Len(t, results, 8)
	for _, result := range results {
		assert.True(t, result.Available)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestFetchAllSlowHostDoesNotBlockSiblings(t *testing.T) {
	t.Parallel()

	fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("fast"))
	}))
	defer fast.Close()

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte("slow"))
	}))
	defer slow.Close()

	f := New(testLogger(t), 200*time.Millisecond, 4)
	results := f.FetchAll(context.Background(), []string{slow.URL, fast.URL})

	require.Len(t, results, 2)
	assert.False(t, results[0].Available) // timed out
	assert.True(t, results[1].Available)
	assert.Equal(t, "fast", results[1].Body)
}
