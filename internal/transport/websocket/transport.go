/*
Package websocket implements library.Transport on top of gorilla/websocket.

One goroutine per connection dials, then reads until the socket goes away;
every handler call is made from it. A second goroutine only writes pings.
*/
package websocket

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/gofrs/uuid"
	gws "github.com/gorilla/websocket"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
	"github.com/vatesfr/wsrpc-go-sdk/internal/common/logger"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/config"
	"github.com/vatesfr/wsrpc-go-sdk/pkg/services/library"
)

// writeWait bounds a single frame write.
const writeWait = 10 * time.Second

type Transport struct {
	dialer       *gws.Dialer
	retryMode    core.RetryMode
	retryMaxTime time.Duration
	pingPeriod   time.Duration
	log          *logger.Logger
}

func New(cfg *config.Config, log *logger.Logger) library.Transport {
	handshake := cfg.HandshakeTimeout
	if handshake <= 0 {
		handshake = core.DefaultHandshakeTimeout
	}
	retryMaxTime := cfg.RetryMaxTime
	if retryMaxTime <= 0 {
		retryMaxTime = core.DefaultRetryMaxTime
	}
	return &Transport{
		dialer: &gws.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshake,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: cfg.InsecureSkipVerify,
			},
		},
		retryMode:    cfg.RetryMode,
		retryMaxTime: retryMaxTime,
		pingPeriod:   cfg.PingPeriod,
		log:          log,
	}
}

func (t *Transport) Connect(ctx context.Context, url string, handler library.TransportHandler) {
	go t.run(ctx, url, handler)
}

func (t *Transport) run(ctx context.Context, url string, handler library.TransportHandler) {
	ws, err := t.dial(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			t.log.Debug("Dial abandoned", zap.String("url", url), zap.Error(err))
			return
		}
		handler.HandleConnectFailed(core.ErrFailedToDial.WithArgs(url, err))
		return
	}

	c := newConn(ws, t.pingPeriod, t.log)
	c.log.Info("Websocket connected", zap.String("url", url))

	handler.HandleConnected(c)
	c.readLoop(handler)
}

func (t *Transport) dial(ctx context.Context, url string) (*gws.Conn, error) {
	var b backoff.BackOff = &backoff.StopBackOff{}
	if t.retryMode == core.Backoff {
		exp := backoff.NewExponentialBackOff()
		exp.MaxElapsedTime = t.retryMaxTime
		b = exp
	}

	var ws *gws.Conn
	operation := func() error {
		conn, resp, err := t.dialer.DialContext(ctx, url, nil)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err != nil {
			return err
		}
		ws = conn
		return nil
	}
	notify := func(err error, next time.Duration) {
		t.log.Warn("Dial failed, retrying",
			zap.String("url", url),
			zap.Duration("next", next),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, err
	}
	return ws, nil
}

// conn is an established socket. Writes are serialized by mu, reads only
// happen in readLoop.
type conn struct {
	id         uuid.UUID
	ws         *gws.Conn
	pingPeriod time.Duration
	log        *logger.Logger

	mu      sync.Mutex
	closing *atomic.Bool
	done    chan struct{}
}

func newConn(ws *gws.Conn, pingPeriod time.Duration, log *logger.Logger) *conn {
	id := uuid.Must(uuid.NewV4())
	return &conn{
		id:         id,
		ws:         ws,
		pingPeriod: pingPeriod,
		log:        log.With(zap.Stringer("conn", id)),
		closing:    atomic.NewBool(false),
		done:       make(chan struct{}),
	}
}

func (c *conn) SendText(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(gws.TextMessage, payload)
}

// Close sends a close frame and tears the socket down. The read loop then
// reports HandleClosed without an error.
func (c *conn) Close() error {
	if !c.closing.CompareAndSwap(false, true) {
		return nil
	}

	c.mu.Lock()
	err := c.ws.WriteControl(gws.CloseMessage,
		gws.FormatCloseMessage(gws.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	c.mu.Unlock()
	if err != nil && !errors.Is(err, gws.ErrCloseSent) {
		c.log.Debug("Failed to send close frame", zap.Error(err))
	}
	return c.ws.Close()
}

func (c *conn) readLoop(handler library.TransportHandler) {
	defer close(c.done)

	c.ws.SetReadLimit(core.WSReadLimit)
	if c.pingPeriod > 0 {
		pongWait := 2 * c.pingPeriod
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
		c.ws.SetPongHandler(func(string) error {
			return c.ws.SetReadDeadline(time.Now().Add(pongWait))
		})
		go c.pingLoop()
	}

	for {
		msgType, data, err := c.ws.ReadMessage()
		if err != nil {
			if !c.closing.Load() && !gws.IsCloseError(err, gws.CloseNormalClosure, gws.CloseGoingAway) {
				c.log.Error("Websocket read failed", zap.Error(err))
				handler.HandleError(err)
			}
			_ = c.ws.Close()
			c.log.Info("Websocket closed")
			handler.HandleClosed()
			return
		}
		if msgType != gws.TextMessage {
			c.log.Warn("Dropping non text frame", zap.Int("type", msgType))
			continue
		}
		handler.HandleMessage(data)
	}
}

func (c *conn) pingLoop() {
	ticker := time.NewTicker(c.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			err := c.ws.WriteControl(gws.PingMessage, nil, time.Now().Add(writeWait))
			c.mu.Unlock()
			if err != nil {
				c.log.Warn("Ping failed, closing websocket", zap.Error(err))
				_ = c.ws.Close()
				return
			}
		}
	}
}
