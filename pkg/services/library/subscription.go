package library

import (
	"context"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
)

type Subscriptions interface {
	Subscribe(ctx context.Context, method string, callback payloads.SubscriptionCallback) (payloads.SubscriptionID, error)
	// Dispatch fans a push out to every consumer of the subscription. An
	// unknown id is reported as an error wrapping core.ErrUnroutable.
	Dispatch(id payloads.SubscriptionID, rpcErr *core.JsonRpcError, result any) error
	Len() int
}
