/*
Package provider is the entry point of the SDK. A Provider keeps one
websocket connection to a JSON-RPC 2.0 node and multiplexes requests and
subscriptions over it.

Requests issued before the connection is established are queued and written
in order once it is. Nothing is redialed after a disconnect: pending requests
and subscriptions stay registered and new requests are queued, but none of
them progress until a new Provider is built.
*/
package provider

import (
	"context"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
	"github.com/vatesfr/wsrpc-go-sdk/internal/common/logger"
	"github.com/vatesfr/wsrpc-go-sdk/internal/transport/websocket"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/config"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/codec"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/connection"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/correlator"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/jsonrpc"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/subscription"
)

type Provider struct {
	codec         library.Codec
	correlator    library.Correlator
	subscriptions library.Subscriptions
	connection    library.Connection
	jsonrpcSvc    library.JSONRPC

	cancel context.CancelFunc
	log    *logger.Logger
}

// Loads a .env file from the working directory, if any, so that config.New
// picks up WSRPC_* variables without exporting them.
func init() {
	_ = gotenv.Load()
}

type options struct {
	transport library.Transport
	observer  library.Observer
	log       *logger.Logger
}

type Option func(*options)

// WithTransport replaces the websocket transport, mostly for tests.
func WithTransport(transport library.Transport) Option {
	return func(o *options) { o.transport = transport }
}

// WithObserver registers the receiver of connected, disconnected and error
// events.
func WithObserver(observer library.Observer) Option {
	return func(o *options) { o.observer = observer }
}

func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// New builds a Provider and starts connecting to the configured endpoint. A
// nil config is read from the environment. Only an invalid configuration
// fails New: transport failures are reported to the observer.
func New(cfg *config.Config, opts ...Option) (library.Provider, error) {
	if cfg == nil {
		var err error
		if cfg, err = config.New(); err != nil {
			return nil, err
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	log := o.log
	if log == nil {
		var err error
		if log, err = logger.New(cfg.Development, nil, nil); err != nil {
			return nil, err
		}
	}

	transport := o.transport
	if transport == nil {
		transport = websocket.New(cfg, log)
	}

	p := &Provider{
		codec:      codec.New(),
		correlator: correlator.New(log),
		log:        log,
	}
	p.subscriptions = subscription.New(p, cfg.SubscribeMethod, log)
	p.connection = connection.New(p.codec, p.correlator, p.subscriptions, o.observer, cfg.NotificationMethod, log)
	p.jsonrpcSvc = jsonrpc.New(p, log)

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	endpoint := cfg.Endpoint()
	log.Info("Connecting to node",
		zap.String("endpoint", endpoint),
		zap.Stringer("retryMode", cfg.RetryMode),
	)
	transport.Connect(ctx, endpoint, p.connection)

	return p, nil
}

// Send encodes and writes a request, or queues it until the connection is
// established. callback runs on the read loop once the response arrives and
// must not block.
func (p *Provider) Send(method string, params []any, callback payloads.ResultCallback) (uint64, error) {
	id, payload, err := p.codec.Encode(method, params)
	if err != nil {
		p.log.Error("Failed to encode request", zap.String("method", method), zap.Error(err))
		return 0, err
	}
	if callback == nil {
		callback = func(any, error) {}
	}

	// Registered first so the response cannot overtake its handler.
	if err := p.correlator.Register(id, callback); err != nil {
		return 0, err
	}
	if err := p.connection.Send(payload); err != nil {
		p.correlator.Forget(id)
		return 0, err
	}

	p.log.Debug("Request sent", zap.String("method", method), zap.Uint64("id", id))
	return id, nil
}

type response struct {
	result any
	err    error
}

func (p *Provider) SendAsync(ctx context.Context, method string, params []any) (any, error) {
	done := make(chan response, 1)
	_, err := p.Send(method, params, func(result any, err error) {
		done <- response{result: result, err: err}
	})
	if err != nil {
		return nil, err
	}

	select {
	case r := <-done:
		return r.result, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Provider) Subscribe(ctx context.Context, method string, callback payloads.SubscriptionCallback) (payloads.SubscriptionID, error) {
	return p.subscriptions.Subscribe(ctx, method, callback)
}

func (p *Provider) IsConnected() bool {
	return p.connection.State() == core.Connected
}

// Close stops a dial in progress and closes the connection.
func (p *Provider) Close() error {
	p.cancel()
	err := p.connection.Close()
	p.log.Sync()
	return err
}

func (p *Provider) JSONRPC() library.JSONRPC {
	return p.jsonrpcSvc
}
