package library

import "context"

//go:generate mockgen --build_flags=--mod=mod --package mock --destination mock/transport.go . Transport,Conn,TransportHandler,Observer

// Transport opens the socket the provider talks over.
type Transport interface {
	// Connect dials url without blocking. The outcome is reported to
	// handler, followed by the events of the established connection.
	Connect(ctx context.Context, url string, handler TransportHandler)
}

// Conn is an established transport connection.
type Conn interface {
	SendText(payload []byte) error
	Close() error
}

// TransportHandler receives transport events, one method per event kind.
// Calls are made from a single goroutine.
type TransportHandler interface {
	HandleConnected(conn Conn)
	HandleConnectFailed(err error)
	HandleClosed()
	HandleError(err error)
	HandleMessage(payload []byte)
}

// Observer is notified of the provider lifecycle and of non-fatal errors.
type Observer interface {
	OnConnected()
	OnDisconnected()
	OnError(err error)
}
