package library

import "github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"

type Codec interface {
	// Encode assigns the next request id and serializes the request.
	Encode(method string, params []any) (uint64, []byte, error)
	// Decode classifies an inbound payload. Malformed payloads yield a
	// *core.DecodeError.
	Decode(raw []byte) (payloads.Message, error)
	LastID() uint64
}
