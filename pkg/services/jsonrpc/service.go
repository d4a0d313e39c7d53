package jsonrpc

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/logger"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library"
)

type Service struct {
	requester library.Requester
	log       *logger.Logger
}

func New(requester library.Requester, log *logger.Logger) library.JSONRPC {
	return &Service{
		requester: requester,
		log:       log,
	}
}

// Call waits for the response of method and decodes it into result, which
// must be a pointer. A nil result discards the response.
func (s *Service) Call(ctx context.Context, method string, params []any, result any, logContext ...zap.Field) error {
	s.log.Debug("Making JSON-RPC call",
		append([]zap.Field{
			zap.String("method", method),
			zap.Any("params", params),
		}, logContext...)...)

	raw, err := s.requester.SendAsync(ctx, method, params)
	if err != nil {
		s.log.Error("JSON-RPC call failed",
			append([]zap.Field{
				zap.String("method", method),
				zap.Error(err),
			}, logContext...)...)
		return fmt.Errorf("JSON-RPC call to %s failed: %w", method, err)
	}

	if result != nil {
		if err := payloads.DecodeResult(raw, result); err != nil {
			s.log.Error("Failed to decode JSON-RPC result",
				append([]zap.Field{
					zap.String("method", method),
					zap.Error(err),
				}, logContext...)...)
			return fmt.Errorf("JSON-RPC call to %s failed: %w", method, err)
		}
	}

	s.log.Debug("JSON-RPC call successful",
		append([]zap.Field{
			zap.String("method", method),
			zap.Any("result", result),
		}, logContext...)...)

	return nil
}

func (s *Service) ValidateResult(result bool, operation string, logContext ...zap.Field) error {
	if !result {
		s.log.Warn("Operation returned unsuccessful status",
			append([]zap.Field{
				zap.String("operation", operation),
			}, logContext...)...)
		return fmt.Errorf("%s returned unsuccessful status", operation)
	}
	return nil
}
