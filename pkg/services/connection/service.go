package connection

import (
	"sync"

	"go.uber.org/zap"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
	"github.com/vatesfr/wsrpc-go-sdk/internal/common/logger"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/payloads"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library"
)

type Service struct {
	codec              library.Codec
	correlator         library.Correlator
	subscriptions      library.Subscriptions
	observer           library.Observer
	notificationMethod string
	log                *logger.Logger

	// mu is held while flushing so that payloads sent meanwhile are
	// written after the queue.
	mu     sync.Mutex
	state  core.ConnectionState
	conn   library.Conn
	queued [][]byte
}

// New returns a manager in the Pending state. A nil observer is replaced by
// one that ignores every event.
func New(
	codec library.Codec,
	correlator library.Correlator,
	subscriptions library.Subscriptions,
	observer library.Observer,
	notificationMethod string,
	log *logger.Logger,
) library.Connection {
	if observer == nil {
		observer = ObserverFuncs{}
	}
	if notificationMethod == "" {
		notificationMethod = core.DefaultNotificationMethod
	}
	return &Service{
		codec:              codec,
		correlator:         correlator,
		subscriptions:      subscriptions,
		observer:           observer,
		notificationMethod: notificationMethod,
		log:                log,
		state:              core.Pending,
	}
}

func (s *Service) Send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != core.Connected {
		s.queued = append(s.queued, payload)
		s.log.Debug("Queued payload", zap.Stringer("state", s.state), zap.Int("queued", len(s.queued)))
		return nil
	}

	if err := s.conn.SendText(payload); err != nil {
		s.log.Error("Failed to send payload", zap.Error(err))
		return core.ErrFailedToSend.WithArgs(err)
	}
	return nil
}

func (s *Service) State() core.ConnectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) Queued() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][]byte, len(s.queued))
	copy(out, s.queued)
	return out
}

func (s *Service) Close() error {
	s.mu.Lock()
	conn := s.conn
	s.state = core.Closed
	s.conn = nil
	s.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (s *Service) HandleConnected(conn library.Conn) {
	s.mu.Lock()
	if s.state == core.Closed {
		s.mu.Unlock()
		s.log.Warn("Connection established after close, dropping it")
		_ = conn.Close()
		return
	}

	s.state = core.Connected
	s.conn = conn

	flushed := 0
	var flushErr error
	for _, payload := range s.queued {
		if err := conn.SendText(payload); err != nil {
			flushErr = err
			break
		}
		flushed++
	}
	s.queued = s.queued[flushed:]
	if len(s.queued) == 0 {
		s.queued = nil
	}
	s.mu.Unlock()

	s.log.Info("Connection established", zap.Int("flushed", flushed))
	if flushErr != nil {
		s.log.Error("Failed to flush queued payloads", zap.Int("remaining", len(s.queued)), zap.Error(flushErr))
		s.emitError(core.ErrFailedToSend.WithArgs(flushErr))
	}
	core.SafeInvoke(s.log, "observer connected", s.observer.OnConnected)
}

func (s *Service) HandleConnectFailed(err error) {
	s.mu.Lock()
	s.state = core.Closed
	s.conn = nil
	s.mu.Unlock()

	s.log.Error("Connection failed", zap.Error(err))
	s.emitError(err)
}

// HandleClosed moves to Closed. Pending requests and subscriptions are
// left untouched, nothing redials.
func (s *Service) HandleClosed() {
	s.mu.Lock()
	s.state = core.Closed
	s.conn = nil
	s.mu.Unlock()

	s.log.Warn("Connection closed",
		zap.Int("pendingRequests", s.correlator.Len()),
		zap.Int("subscriptions", s.subscriptions.Len()),
	)
	core.SafeInvoke(s.log, "observer disconnected", s.observer.OnDisconnected)
}

func (s *Service) HandleError(err error) {
	s.log.Error("Connection error", zap.Error(err))
	s.emitError(err)
}

func (s *Service) HandleMessage(payload []byte) {
	msg, err := s.codec.Decode(payload)
	if err != nil {
		s.log.Error("Dropping malformed message", zap.Error(err), zap.ByteString("payload", payload))
		return
	}

	switch m := msg.(type) {
	case *payloads.Response:
		s.log.Debug("Received response", zap.Uint64("id", m.ID))
		if err := s.correlator.Resolve(m.ID, m.Error, m.Result); err != nil {
			s.log.Warn("Unroutable response", zap.Uint64("id", m.ID), zap.Error(err))
			s.emitError(err)
		}
	case *payloads.Notification:
		if m.Method != s.notificationMethod {
			s.log.Debug("Ignoring notification", zap.String("method", m.Method))
			return
		}
		if err := s.subscriptions.Dispatch(m.Subscription, m.Error, m.Result); err != nil {
			s.log.Warn("Unroutable notification", zap.String("subscription", m.Subscription), zap.Error(err))
			s.emitError(err)
		}
	}
}

func (s *Service) emitError(err error) {
	core.SafeInvoke(s.log, "observer error", func() {
		s.observer.OnError(err)
	})
}

// ObserverFuncs adapts plain functions to library.Observer. Nil fields are
// ignored.
type ObserverFuncs struct {
	Connected    func()
	Disconnected func()
	Error        func(err error)
}

func (o ObserverFuncs) OnConnected() {
	if o.Connected != nil {
		o.Connected()
	}
}

func (o ObserverFuncs) OnDisconnected() {
	if o.Disconnected != nil {
		o.Disconnected()
	}
}

func (o ObserverFuncs) OnError(err error) {
	if o.Error != nil {
		o.Error(err)
	}
}
