package core

import "time"

type RetryMode int

const (
	None RetryMode = iota // specifies that no retries will be made
	// Specifies that the initial dial is retried with exponential backoff until
	// RetryMaxTime elapses. An established connection that drops is never
	// redialed.
	Backoff
)

func (m RetryMode) String() string {
	switch m {
	case None:
		return "none"
	case Backoff:
		return "backoff"
	default:
		return "unknown"
	}
}

const (
	JSONRPCVersion = "2.0"

	DefaultSubscribeMethod    = "eth_subscribe"
	DefaultNotificationMethod = "eth_subscription"

	DefaultHandshakeTimeout = 10 * time.Second
	DefaultPingPeriod       = 30 * time.Second
	DefaultRetryMaxTime     = 5 * time.Minute

	// Message limit for the receiving side.
	WSReadLimit = 10 * 1024 * 1024
)

// ConnectionState is the lifecycle state of the single provider connection.
type ConnectionState int

const (
	Pending ConnectionState = iota
	Connected
	Closed
)

func (s ConnectionState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Connected:
		return "connected"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
