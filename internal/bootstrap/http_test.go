package bootstrap

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

	"github.com/hustlehub/hustle-api/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func memoryConfig() *config.AppConfig {
	cfg := &config.AppConfig{
		IsDev: true,
		Store: config.StoreDriverMemory,
		Auth: config.AuthConfig{
			SessionStore: config.SessionStoreMemory,
			DevUsers:     "giver-1:job_giver:Nadia,hustler-1:hustler",
			ActorHeaders: true,
		},
	}
	cfg.Sanitize()
	return cfg
}

func TestServeHTTP_ShutsDownOnCancel(t *testing.T) {
	cfg := memoryConfig()
	services, err := NewServices(ServiceDeps{
		Config: cfg,
		Repos:  NewMemoryRepositories(discardLogger()),
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	handler := BuildHTTPHandler(&HTTPServerConfig{Config: cfg, Services: services, Logger: discardLogger()})
	server := NewHTTPServer(cfg.HTTP, handler)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveListener(ctx, server, ln, time.Second, discardLogger()) }()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://"+ln.Addr().String()+"/healthz", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
