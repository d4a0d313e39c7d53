package payloads

import "github.com/vatesfr/wsrpc-go-sdk/internal/common/core"

// Message is a decoded inbound message, either a *Response or a
// *Notification.
type Message interface {
	isMessage()
}

// Response answers the request with the same ID.
type Response struct {
	ID     uint64
	Error  *core.JsonRpcError
	Result any
}

// Notification is a server push. It has no ID, Method names the event
// (eth_subscription for subscription pushes).
type Notification struct {
	Method       string
	Subscription string
	Error        *core.JsonRpcError
	Result       any
}

func (*Response) isMessage()     {}
func (*Notification) isMessage() {}
