package library

import (
	"context"

	"go.uber.org/zap"
)

type JSONRPC interface {
	Call(ctx context.Context, method string, params []any, result any, logContext ...zap.Field) error
	ValidateResult(result bool, operation string, logContext ...zap.Field) error
}
