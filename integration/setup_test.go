package integration

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/logger"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/config"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/provider"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/connection"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library"
)

const (
	trueStr = "true"

	defaultPushTimeout = 60 * time.Second
)

type TestClient struct {
	Provider library.Provider
	// PushTimeout bounds the wait for the first push of a subscription.
	PushTimeout time.Duration
}

// Setup connects a provider to the node configured in the environment. Each
// test gets its own provider so that subscriptions do not leak across tests.
func Setup(t *testing.T) *TestClient {
	if os.Getenv("WSRPC_INTEGRATION_TESTS") != trueStr {
		t.Skip("Skipping integration test. Set WSRPC_INTEGRATION_TESTS=" + trueStr + " to run")
	}

	cfg, err := config.New()
	require.NoError(t, err, "failed to create config")

	sink := RegisterTestingSink(t)
	log, err := logger.New(cfg.Development, []string{sink}, []string{sink})
	require.NoError(t, err, "failed to create logger")

	connected := make(chan struct{}, 1)
	p, err := provider.New(cfg,
		provider.WithLogger(log),
		provider.WithObserver(connection.ObserverFuncs{
			Connected: func() { connected <- struct{}{} },
			Error:     func(err error) { t.Logf("Provider error: %v", err) },
		}),
	)
	require.NoError(t, err, "failed to create provider")
	t.Cleanup(func() { _ = p.Close() })

	select {
	case <-connected:
	case <-time.After(cfg.HandshakeTimeout + 5*time.Second):
		t.Fatalf("Provider did not connect to %s", cfg.Endpoint())
	}

	pushTimeout := defaultPushTimeout
	if v := os.Getenv("WSRPC_PUSH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		require.NoError(t, err, "WSRPC_PUSH_TIMEOUT is not a valid duration")
		pushTimeout = d
	}

	return &TestClient{
		Provider:    p,
		PushTimeout: pushTimeout,
	}
}
