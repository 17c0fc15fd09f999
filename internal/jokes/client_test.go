package jokes

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashx/asha/pkg/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Joke_Remote(t *testing.T) {
	var gotAccept, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("Why did the scarecrow win an award? He was outstanding in his field.\n"))
	}))
	defer server.Close()

	client := NewClient(config.JokesConfig{BaseURL: server.URL, UserAgent: "asha-test"}, testLogger())

	joke, err := client.Joke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Why did the scarecrow win an award? He was outstanding in his field.", joke)
	assert.Equal(t, "text/plain", gotAccept)
	assert.Equal(t, "asha-test", gotUserAgent)
}

func TestClient_Joke_FallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(config.JokesConfig{BaseURL: server.URL}, testLogger())

	joke, err := client.Joke(context.Background())
	require.NoError(t, err)
	assert.Contains(t, Catalog(), joke)
}

func TestClient_Joke_FallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(config.JokesConfig{BaseURL: server.URL}, testLogger())

	joke, err := client.Joke(context.Background())
	require.NoError(t, err)
	assert.Contains(t, Catalog(), joke)
}

func TestClient_Joke_FallsBackOnEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("   \n"))
	}))
	defer server.Close()

	client := NewClient(config.JokesConfig{BaseURL: server.URL}, testLogger())

	joke, err := client.Joke(context.Background())
	require.NoError(t, err)
	assert.Contains(t, Catalog(), joke)
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	first := Catalog()
	require.NotEmpty(t, first)

	first[0] = "mutated"
	assert.NotEqual(t, "mutated", Catalog()[0])
}
