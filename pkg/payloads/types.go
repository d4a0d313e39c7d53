package payloads

// ResultCallback receives the outcome of a single request. Exactly one of
// result and err is meaningful.
type ResultCallback func(result any, err error)

// SubscriptionCallback receives every push of a subscription, or the error
// carried by a push.
type SubscriptionCallback func(result any, err error)

// SubscriptionID is the identifier assigned by the node to a subscription.
type SubscriptionID = string

// Subscription kinds accepted by eth_subscribe.
const (
	NewHeads               = "newHeads"
	Logs                   = "logs"
	NewPendingTransactions = "newPendingTransactions"
	Syncing                = "syncing"
)
