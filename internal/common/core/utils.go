package core

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/logger"
	"go.uber.org/zap"
)

// SafeInvoke runs a caller supplied callback and recovers from any panic so
// that one failing consumer cannot break the read loop or the remaining
// consumers. The panic is logged and reported as false.
func SafeInvoke(log *logger.Logger, what string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Callback panicked",
				zap.String("callback", what),
				zap.Any("panic", r),
				zap.StackSkip("stack", 2),
			)
			ok = false
		}
	}()
	fn()
	return true
}

// FormatEndpoint returns the websocket endpoint for a host and port, i.e.
// "ws://127.0.0.1:8546/".
func FormatEndpoint(host string, port int) string {
	u := url.URL{
		Scheme: "ws",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/",
	}
	return u.String()
}

// FormatRPCError renders a wire error the way it is logged.
func FormatRPCError(e *JsonRpcError) string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
