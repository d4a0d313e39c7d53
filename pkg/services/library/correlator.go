package library

import (
	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
)

type Correlator interface {
	Register(id uint64, callback payloads.ResultCallback) error
	// Resolve delivers a response to its callback and forgets the request.
	// An unknown id is reported as an error wrapping core.ErrUnroutable.
	Resolve(id uint64, rpcErr *core.JsonRpcError, result any) error
	Forget(id uint64)
	Len() int
}
