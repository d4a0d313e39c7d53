package library

import "github.com/vatesfr/wsrpc-go-sdk/internal/common/core"

// Connection owns the lifecycle of the provider connection and queues
// outbound payloads until it is established.
type Connection interface {
	TransportHandler

	Send(payload []byte) error
	State() core.ConnectionState
	// Queued returns a copy of the payloads waiting for the connection.
	Queued() [][]byte
	Close() error
}
