package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte("<html><body>Residential rate: $0.094</body></html>"))
	}))
	defer server.Close()

	client := NewClient(Options{})
	res, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.True(t, res.Ok())
	require.Contains(t, string(res.Body), "$0.094")
}

func TestFetchNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Options{})
	res, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.False(t, res.Ok())
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestFetchDumpsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Business rate: 9.4¢</body></html>"))
	}))
	defer server.Close()

	dir := t.TempDir()
	client := NewClient(Options{DumpDir: filepath.Join(dir, "pages")})
	_, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "pages"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	body, err := os.ReadFile(filepath.Join(dir, "pages", entries[0].Name()))
	require.NoError(t, err)
	require.Contains(t, string(body), "9.4¢")
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// park until the client gives up so the timeout path fires
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(Options{Timeout: time.Millisecond * 50})
	_, err := client.Fetch(context.Background(), server.URL)
	require.Error(t, err)
}
