package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
)

type Config struct {
	// Url takes precedence over Host and Port when set. It must use the
	// ws or wss scheme.
	Url                string
	Host               string
	Port               int
	InsecureSkipVerify bool
	// Mostly used for log level.
	Development  bool
	RetryMode    core.RetryMode
	RetryMaxTime time.Duration

	SubscribeMethod    string
	NotificationMethod string

	HandshakeTimeout time.Duration
	PingPeriod       time.Duration
}

var (
	retryModeMap = map[string]core.RetryMode{
		"none":    core.None,
		"backoff": core.Backoff,
	}
)

// New returns a new Config with sensible defaults.
//
// The following environment variables are honored:
//
// - WSRPC_URL: the full websocket URL of the node, e.g. wss://node.example/ws.
// - WSRPC_HOST: the host of the node, used when WSRPC_URL is not set.
// - WSRPC_PORT: the port of the node, used when WSRPC_URL is not set.
// - WSRPC_INSECURE: whether to skip verifying the server's TLS certificate.
// - WSRPC_DEVELOPMENT: whether to enable development mode.
// - WSRPC_RETRY_MODE: the dial retry mode to use. Defaults to "none". Valid values are "none", "backoff".
// - WSRPC_RETRY_MAX_TIME: the maximum time spent retrying the dial. Defaults to 5 minutes.
// - WSRPC_SUBSCRIBE_METHOD: the method used to open subscriptions. Defaults to "eth_subscribe".
// - WSRPC_NOTIFICATION_METHOD: the method carried by pushes. Defaults to "eth_subscription".
// - WSRPC_HANDSHAKE_TIMEOUT: the websocket handshake timeout. Defaults to 10 seconds.
// - WSRPC_PING_PERIOD: the keepalive ping period. Defaults to 30 seconds.
//
// If neither WSRPC_URL nor WSRPC_HOST and WSRPC_PORT are set, New will return an error.
func New() (*Config, error) {
	cfg := Default()
	cfg.Url = os.Getenv("WSRPC_URL")
	cfg.Host = os.Getenv("WSRPC_HOST")

	if v := os.Getenv("WSRPC_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("WSRPC_PORT is not a valid port: %w", err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("WSRPC_RETRY_MODE"); v != "" {
		retry, ok := retryModeMap[v]
		if !ok {
			fmt.Println("[ERROR] failed to set retry mode, disabling retries")
		} else {
			cfg.RetryMode = retry
		}
	}

	if v := os.Getenv("WSRPC_RETRY_MAX_TIME"); v != "" {
		duration, err := time.ParseDuration(v)
		if err == nil {
			cfg.RetryMaxTime = duration
		} else {
			fmt.Println("[ERROR] failed to set retry max time, keeping the default")
		}
	}

	if v := os.Getenv("WSRPC_INSECURE"); v != "" {
		cfg.InsecureSkipVerify, _ = strconv.ParseBool(v)
	}

	if v := os.Getenv("WSRPC_DEVELOPMENT"); v != "" {
		cfg.Development, _ = strconv.ParseBool(v)
	}

	if v := os.Getenv("WSRPC_SUBSCRIBE_METHOD"); v != "" {
		cfg.SubscribeMethod = v
	}
	if v := os.Getenv("WSRPC_NOTIFICATION_METHOD"); v != "" {
		cfg.NotificationMethod = v
	}

	if v := os.Getenv("WSRPC_HANDSHAKE_TIMEOUT"); v != "" {
		if duration, err := time.ParseDuration(v); err == nil {
			cfg.HandshakeTimeout = duration
		}
	}
	if v := os.Getenv("WSRPC_PING_PERIOD"); v != "" {
		if duration, err := time.ParseDuration(v); err == nil {
			cfg.PingPeriod = duration
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a Config without an endpoint and every other field set to
// its default value.
func Default() *Config {
	return &Config{
		RetryMode:          core.None,
		RetryMaxTime:       core.DefaultRetryMaxTime,
		SubscribeMethod:    core.DefaultSubscribeMethod,
		NotificationMethod: core.DefaultNotificationMethod,
		HandshakeTimeout:   core.DefaultHandshakeTimeout,
		PingPeriod:         core.DefaultPingPeriod,
	}
}

// Validate checks that an endpoint can be built from the config.
func (c *Config) Validate() error {
	if c.Url != "" {
		u, err := url.Parse(c.Url)
		if err != nil {
			return fmt.Errorf("failed to parse url: %w", err)
		}
		if u.Scheme != "ws" && u.Scheme != "wss" {
			return fmt.Errorf("unsupported url scheme %q, expected ws or wss", u.Scheme)
		}
		return nil
	}
	if c.Host == "" {
		return errors.New("WSRPC_HOST is not set, please set it to the node host or set WSRPC_URL")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("WSRPC_PORT is not set, please set it to the node websocket port")
	}
	return nil
}

// Endpoint returns the websocket URL to dial.
func (c *Config) Endpoint() string {
	if c.Url != "" {
		return c.Url
	}
	return core.FormatEndpoint(c.Host, c.Port)
}
