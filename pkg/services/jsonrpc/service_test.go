package jsonrpc

import (
	"context"
	"errors"
	"testing"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/logger"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library/mock"
)

func setupJSONRPCTest(t *testing.T) (*mock.MockRequester, library.JSONRPC) {
	ctrl := gomock.NewController(t)
	requester := mock.NewMockRequester(ctrl)

	log, err := logger.New(true, nil, nil)
	require.NoError(t, err)

	return requester, New(requester, log)
}

func TestCall(t *testing.T) {
	ctx := context.Background()

	t.Run("successful call", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		requester.EXPECT().
			SendAsync(ctx, "eth_chainId", []any{}).
			Return("0x1", nil)

		var result string
		err := jsonrpcSvc.Call(ctx, "eth_chainId", []any{}, &result)

		assert.NoError(t, err)
		assert.Equal(t, "0x1", result)
	})

	t.Run("error call", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		requester.EXPECT().
			SendAsync(ctx, "eth_call", gomock.Any()).
			Return(nil, &jsonrpc2.Error{Code: -32000, Message: "execution reverted"})

		var result string
		err := jsonrpcSvc.Call(ctx, "eth_call", []any{map[string]any{"to": "0x0"}, "latest"}, &result)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JSON-RPC call to eth_call failed")
		assert.Contains(t, err.Error(), "execution reverted")

		var rpcErr *jsonrpc2.Error
		assert.True(t, errors.As(err, &rpcErr))
		assert.Empty(t, result)
	})

	t.Run("method not found", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		requester.EXPECT().
			SendAsync(ctx, "not_found", gomock.Any()).
			Return(nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "the method not_found does not exist"})

		var result string
		err := jsonrpcSvc.Call(ctx, "not_found", nil, &result)

		assert.Error(t, err)
		assert.Empty(t, result)
	})

	t.Run("complex result", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		requester.EXPECT().
			SendAsync(ctx, "eth_getBlockByNumber", []any{"latest", false}).
			Return(map[string]any{
				"number":     "0x1b4",
				"hash":       "0xdc0818cf78f21a8e70579cb46a43643f78291264dda342ae31049421c82d21ae",
				"parentHash": "0xe99e022112df268087ea7eafaf4790497fd21dbeeb6bd7a1721df161a6657a54",
				"gasUsed":    "0x9f759",
			}, nil)

		var head payloads.NewHead
		err := jsonrpcSvc.Call(ctx, "eth_getBlockByNumber", []any{"latest", false}, &head)

		assert.NoError(t, err)
		assert.Equal(t, "0x1b4", head.Number)
		assert.Equal(t, "0x9f759", head.GasUsed)
		assert.Empty(t, head.Miner)
	})

	t.Run("result of the wrong shape", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		requester.EXPECT().
			SendAsync(ctx, "eth_blockNumber", gomock.Any()).
			Return("0x1b4", nil)

		var head payloads.NewHead
		err := jsonrpcSvc.Call(ctx, "eth_blockNumber", nil, &head)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode result")
	})

	t.Run("nil result discards the response", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		requester.EXPECT().
			SendAsync(ctx, "eth_sendRawTransaction", gomock.Any()).
			Return("0xe670ec64341771606e55d6b4ca35a1a6b75ee3d5145a99d05921026d1527331", nil)

		err := jsonrpcSvc.Call(ctx, "eth_sendRawTransaction", []any{"0xd46e8dd67c5d32be"}, nil)
		assert.NoError(t, err)
	})

	t.Run("canceled wait", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		requester.EXPECT().
			SendAsync(canceled, "eth_chainId", gomock.Any()).
			Return(nil, context.Canceled)

		var result string
		err := jsonrpcSvc.Call(canceled, "eth_chainId", nil, &result)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("with log context", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		requester.EXPECT().
			SendAsync(ctx, "net_version", gomock.Any()).
			Return("1", nil)

		var result string
		err := jsonrpcSvc.Call(ctx, "net_version", nil, &result, zap.String("context", "test-context"))

		assert.NoError(t, err)
		assert.Equal(t, "1", result)
	})
}

func TestValidateResult(t *testing.T) {
	ctx := context.Background()

	t.Run("true result", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		requester.EXPECT().SendAsync(ctx, "net_listening", gomock.Any()).Return(true, nil)

		var result bool
		err := jsonrpcSvc.Call(ctx, "net_listening", nil, &result)
		assert.NoError(t, err)
		assert.True(t, result)

		err = jsonrpcSvc.ValidateResult(result, "test operation")
		assert.NoError(t, err)
	})

	t.Run("false result", func(t *testing.T) {
		requester, jsonrpcSvc := setupJSONRPCTest(t)
		requester.EXPECT().SendAsync(ctx, "net_listening", gomock.Any()).Return(false, nil)

		var result bool
		err := jsonrpcSvc.Call(ctx, "net_listening", nil, &result)
		assert.NoError(t, err)
		assert.False(t, result)

		err = jsonrpcSvc.ValidateResult(result, "test operation")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "test operation returned unsuccessful status")
	})

	t.Run("with log context", func(t *testing.T) {
		_, jsonrpcSvc := setupJSONRPCTest(t)
		err := jsonrpcSvc.ValidateResult(false, "test operation", zap.String("resource", "test-resource"))
		assert.Error(t, err)
	})
}
