package core

import "encoding/json"

// JsonRpcPayload is the outbound JSON-RPC 2.0 request object. Fields are
// declared in wire order.
type JsonRpcPayload struct {
	ID      uint64 `json:"id"`
	Jsonrpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// JsonRpcError is the error object of a JSON-RPC response or push.
type JsonRpcError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// JsonRpcEnvelope is a combined type for responses and notifications since
// we can get any of them from the socket.
type JsonRpcEnvelope struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Error   *JsonRpcError   `json:"error,omitempty"`
	Result  any             `json:"result,omitempty"`
}

// SubscriptionParams is the params object of a subscription push.
type SubscriptionParams struct {
	Subscription string        `json:"subscription"`
	Result       any           `json:"result"`
	Error        *JsonRpcError `json:"error,omitempty"`
}
