package correlator

import (
	"sync"

	"go.uber.org/zap"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
	"github.com/vatesfr/wsrpc-go-sdk/internal/common/logger"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library"
)

type Service struct {
	mu      sync.Mutex
	pending map[uint64]payloads.ResultCallback
	log     *logger.Logger
}

func New(log *logger.Logger) library.Correlator {
	return &Service{
		pending: make(map[uint64]payloads.ResultCallback),
		log:     log,
	}
}

func (s *Service) Register(id uint64, callback payloads.ResultCallback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[id]; ok {
		return core.ErrDuplicateRequestID.WithArgs(id)
	}
	s.pending[id] = callback
	return nil
}

func (s *Service) Resolve(id uint64, rpcErr *core.JsonRpcError, result any) error {
	s.mu.Lock()
	callback, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()

	if !ok {
		return core.ErrUnknownResponse.WithArgs(core.ErrUnroutable, id)
	}
	if callback == nil {
		return nil
	}

	if rpcErr != nil {
		s.log.Debug("Request failed", zap.Uint64("id", id), zap.String("error", core.FormatRPCError(rpcErr)))
		result = nil
	}
	core.SafeInvoke(s.log.With(zap.Uint64("id", id)), "response", func() {
		callback(result, rpcErr.AsError())
	})
	return nil
}

func (s *Service) Forget(id uint64) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
