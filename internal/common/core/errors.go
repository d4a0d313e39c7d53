package core

import (
	"errors"
	"fmt"

	"github.com/sourcegraph/jsonrpc2"
)

// ClientError is a type for errors that occur in the provider packages.
// It is a string that can be formatted with arguments. It avoids to
// repeat the error message formatted in the services.
type ClientError string

const (
	ErrFailedToMarshalRequest ClientError = "failed to marshal request %s: %w"
	ErrFailedToDecodeMessage  ClientError = "failed to decode message: %w"
	ErrFailedToDecodeParams   ClientError = "failed to decode notification params: %w"
	ErrFailedToDecodeResult   ClientError = "failed to decode result into %T: %w"
	ErrMissingResponseID      ClientError = "response without a numeric id: %s"

	ErrUnknownResponse     ClientError = "%w: unable to find handler for response %d"
	ErrUnknownSubscription ClientError = "%w: unable to find subscription for %q"
	ErrDuplicateRequestID  ClientError = "request id %d is already pending"

	ErrUnexpectedSubscriptionID ClientError = "unexpected subscription id type %T"
	ErrFailedToSubscribe        ClientError = "failed to subscribe to %s: %w"

	ErrFailedToDial ClientError = "failed to dial %s: %w"
	ErrFailedToSend ClientError = "failed to send payload: %w"
)

// WithArgs returns a new error with the given arguments.
func (e ClientError) WithArgs(args ...any) error {
	return fmt.Errorf(string(e), args...)
}

// ErrUnroutable is wrapped by every error reporting a response or a push that
// matches no pending request or known subscription.
var ErrUnroutable = errors.New("unroutable message")

// DecodeError reports an inbound payload that is not a well-formed JSON-RPC
// message. The message is dropped, other pending work is unaffected.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return ErrFailedToDecodeMessage.WithArgs(e.Err).Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsError converts a wire error object into the error handed to callbacks.
// A nil receiver yields nil.
func (e *JsonRpcError) AsError() error {
	if e == nil {
		return nil
	}
	return &jsonrpc2.Error{Code: e.Code, Message: e.Message}
}
