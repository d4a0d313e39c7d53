package codec

import (
	"encoding/json"

	"go.uber.org/atomic"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library"
)

type Service struct {
	latestReqID *atomic.Uint64
}

func New() library.Codec {
	return &Service{latestReqID: atomic.NewUint64(0)}
}

func (s *Service) Encode(method string, params []any) (uint64, []byte, error) {
	if params == nil {
		params = []any{}
	}
	id := s.latestReqID.Inc()

	data, err := json.Marshal(core.JsonRpcPayload{
		ID:      id,
		Jsonrpc: core.JSONRPCVersion,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return 0, nil, core.ErrFailedToMarshalRequest.WithArgs(method, err)
	}
	return id, data, nil
}

func (s *Service) Decode(raw []byte) (payloads.Message, error) {
	var env core.JsonRpcEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &core.DecodeError{Err: err}
	}

	if env.Method != "" {
		return decodeNotification(&env)
	}

	if len(env.ID) == 0 {
		return nil, &core.DecodeError{Err: core.ErrMissingResponseID.WithArgs("<absent>")}
	}
	var id uint64
	if err := json.Unmarshal(env.ID, &id); err != nil {
		return nil, &core.DecodeError{Err: core.ErrMissingResponseID.WithArgs(string(env.ID))}
	}

	return &payloads.Response{
		ID:     id,
		Error:  env.Error,
		Result: env.Result,
	}, nil
}

func (s *Service) LastID() uint64 {
	return s.latestReqID.Load()
}

func decodeNotification(env *core.JsonRpcEnvelope) (*payloads.Notification, error) {
	n := &payloads.Notification{
		Method: env.Method,
		Error:  env.Error,
	}
	if len(env.Params) == 0 {
		return n, nil
	}

	var params core.SubscriptionParams
	if err := json.Unmarshal(env.Params, &params); err != nil {
		return nil, &core.DecodeError{Err: core.ErrFailedToDecodeParams.WithArgs(err)}
	}
	n.Subscription = params.Subscription
	n.Result = params.Result
	if n.Error == nil {
		n.Error = params.Error
	}
	return n, nil
}
