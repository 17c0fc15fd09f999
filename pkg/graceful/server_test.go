package graceful

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_ListenAndServe_BindFailureReturns(t *testing.T) {
	// occupy a port so the server cannot bind it
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	srv := &http.Server{Addr: listener.Addr().String()}
	server := NewServer(testLogger(), srv, time.Second)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe(context.Background())
	}()

	select {
	case err := <-errCh:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("ListenAndServe did not return after bind failure")
	}
}

func TestServer_ListenAndServe_ShutsDownOnContextCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	srv := &http.Server{Addr: addr, Handler: http.NewServeMux()}
	server := NewServer(testLogger(), srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe(ctx)
	}()

	// give the listener a moment to come up, then request shutdown
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("ListenAndServe did not return after context cancel")
	}
}

func TestServer_ListenAndServe_NilServer(t *testing.T) {
	server := NewServer(testLogger(), nil, time.Second)
	assert.NoError(t, server.ListenAndServe(context.Background()))
}
