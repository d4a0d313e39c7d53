package library

import (
	"context"

	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --package mock --destination mock/provider.go . Requester

// Provider is the public face of the websocket JSON-RPC client.
type Provider interface {
	Requester

	// Subscribe registers callback for the pushes of method. Subscribing
	// twice to the same method shares one remote subscription.
	Subscribe(ctx context.Context, method string, callback payloads.SubscriptionCallback) (payloads.SubscriptionID, error)
	IsConnected() bool
	Close() error

	JSONRPC() JSONRPC
}

// Requester issues requests over the provider connection.
type Requester interface {
	// Send queues or writes the request and returns its id. callback is
	// invoked once, when the response arrives.
	Send(method string, params []any, callback payloads.ResultCallback) (uint64, error)
	// SendAsync waits for the response. ctx only bounds the wait, the
	// request stays pending when ctx is done.
	SendAsync(ctx context.Context, method string, params []any) (any, error)
}
