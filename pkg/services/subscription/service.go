package subscription

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
	"github.com/vatesfr/wsrpc-go-sdk/internal/common/logger"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library"
)

// subscription is shared by every consumer of one method. ready is closed
// once the node acknowledged (id set) or refused (err set) the subscription.
type subscription struct {
	id         payloads.SubscriptionID
	method     string
	consumers  []payloads.SubscriptionCallback
	lastResult any

	ready chan struct{}
	err   error
}

type Service struct {
	requester       library.Requester
	subscribeMethod string
	log             *logger.Logger

	mu       sync.Mutex
	byID     map[payloads.SubscriptionID]*subscription
	byMethod map[string]*subscription
}

func New(requester library.Requester, subscribeMethod string, log *logger.Logger) library.Subscriptions {
	if subscribeMethod == "" {
		subscribeMethod = core.DefaultSubscribeMethod
	}
	return &Service{
		requester:       requester,
		subscribeMethod: subscribeMethod,
		log:             log,
		byID:            make(map[payloads.SubscriptionID]*subscription),
		byMethod:        make(map[string]*subscription),
	}
}

func (s *Service) Subscribe(ctx context.Context, method string, callback payloads.SubscriptionCallback) (payloads.SubscriptionID, error) {
	s.mu.Lock()
	if sub, ok := s.byMethod[method]; ok {
		sub.consumers = append(sub.consumers, callback)
		acknowledged := sub.id != ""
		cached := sub.lastResult
		s.mu.Unlock()

		if !acknowledged {
			// Still in flight: the consumer gets every push from the first one.
			return s.wait(ctx, sub)
		}
		if cached != nil {
			s.replay(sub, cached, callback)
		}
		return sub.id, nil
	}

	sub := &subscription{
		method:    method,
		consumers: []payloads.SubscriptionCallback{callback},
		ready:     make(chan struct{}),
	}
	s.byMethod[method] = sub
	s.mu.Unlock()

	s.log.Debug("Opening subscription", zap.String("method", method))

	_, err := s.requester.Send(s.subscribeMethod, []any{method}, func(result any, err error) {
		s.acknowledge(sub, result, err)
	})
	if err != nil {
		s.fail(sub, err)
		return "", sub.err
	}

	return s.wait(ctx, sub)
}

// replay hands the last known push to a consumer joining an acknowledged
// subscription, without a round trip to the node.
func (s *Service) replay(sub *subscription, cached any, callback payloads.SubscriptionCallback) {
	s.log.Debug("Replaying last result to new consumer",
		zap.String("method", sub.method), zap.String("subscription", sub.id))
	core.SafeInvoke(s.log.With(zap.String("subscription", sub.id)), "subscription replay", func() {
		callback(cached, nil)
	})
}

func (s *Service) wait(ctx context.Context, sub *subscription) (payloads.SubscriptionID, error) {
	select {
	case <-sub.ready:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if sub.err != nil {
		return "", sub.err
	}
	return sub.id, nil
}

// acknowledge runs on the read loop, so the subscription is known before the
// next inbound message is routed.
func (s *Service) acknowledge(sub *subscription, result any, err error) {
	if err != nil {
		s.fail(sub, core.ErrFailedToSubscribe.WithArgs(sub.method, err))
		return
	}
	id, ok := result.(string)
	if !ok || id == "" {
		s.fail(sub, core.ErrFailedToSubscribe.WithArgs(sub.method, core.ErrUnexpectedSubscriptionID.WithArgs(result)))
		return
	}

	s.mu.Lock()
	sub.id = id
	s.byID[id] = sub
	s.mu.Unlock()
	close(sub.ready)

	s.log.Info("Subscription opened", zap.String("method", sub.method), zap.String("subscription", id))
}

func (s *Service) fail(sub *subscription, err error) {
	s.mu.Lock()
	if s.byMethod[sub.method] == sub {
		delete(s.byMethod, sub.method)
	}
	sub.err = err
	s.mu.Unlock()
	close(sub.ready)

	s.log.Error("Subscription failed", zap.String("method", sub.method), zap.Error(err))
}

func (s *Service) Dispatch(id payloads.SubscriptionID, rpcErr *core.JsonRpcError, result any) error {
	s.mu.Lock()
	sub, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return core.ErrUnknownSubscription.WithArgs(core.ErrUnroutable, id)
	}
	if rpcErr != nil {
		sub.lastResult = nil
		result = nil
	} else {
		sub.lastResult = result
	}
	consumers := make([]payloads.SubscriptionCallback, len(sub.consumers))
	copy(consumers, sub.consumers)
	s.mu.Unlock()

	err := rpcErr.AsError()
	log := s.log.With(zap.String("subscription", id))
	for _, consumer := range consumers {
		core.SafeInvoke(log, "subscription", func() {
			consumer(result, err)
		})
	}
	return nil
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
