package bridge

import (
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/duplex-dev/duplex/pkg/duplex"
	"github.com/duplex-dev/duplex/pkg/scope"
	"github.com/duplex-dev/duplex/pkg/uievent"
)

// EffectSource is the subset of duplex.Emitter the bridge needs.
// It is satisfied by *duplex.Emitter[S, E] for any state type S.
type EffectSource[E any] interface {
	SubscribeEffects(fn func(E), opts ...duplex.SubscribeOption[E]) *duplex.Subscription[E]
}

// Encoder turns an effect into a client event name and CustomEvent detail.
type Encoder[E any] func(effect E) (event string, detail any)

// UIEvents is the Encoder for uievent.Event effects.
func UIEvents(ev uievent.Event) (string, any) {
	return uievent.WireName(ev), ev.Detail()
}

// frame is the JSON wire format for one effect.
type frame struct {
	Event  string `json:"event"`
	Detail any    `json:"detail,omitempty"`
}

// Handler returns an http.Handler that upgrades requests to WebSocket and
// streams src's effects to the client until it disconnects.
func Handler[E any](src EffectSource[E], encode Encoder[E], opts ...Option) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
	}
	if cfg.checkOrigin != nil {
		upgrader.CheckOrigin = cfg.checkOrigin
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			cfg.logger.Error("websocket upgrade failed", "error", err)
			return
		}

		s := &session{
			id:     uuid.NewString(),
			conn:   conn,
			send:   make(chan frame, cfg.sendBuffer),
			done:   make(chan struct{}),
			scope:  scope.New(),
			config: &cfg,
		}
		s.logger = cfg.logger.With("session", s.id)

		s.scope.Add(src.SubscribeEffects(func(effect E) {
			event, detail := encode(effect)
			s.enqueue(frame{Event: event, Detail: detail})
		}))

		s.logger.Debug("bridge session connected", "remote", r.RemoteAddr)

		go s.writeLoop()
		s.readLoop()
		s.close()
	})
}

// session is one WebSocket connection with its own subscription lifetime.
type session struct {
	id     string
	conn   *websocket.Conn
	send   chan frame
	done   chan struct{}
	scope  *scope.Scope
	config *config
	logger *slog.Logger

	dropped   atomic.Int64
	closeOnce sync.Once
}

// enqueue hands a frame to the write loop without blocking the emitter's
// dispatch. A full buffer drops the frame, preserving fire-and-forget
// semantics for slow clients.
func (s *session) enqueue(fr frame) {
	select {
	case s.send <- fr:
	case <-s.done:
	default:
		n := s.dropped.Add(1)
		s.logger.Warn("send buffer full, effect dropped", "event", fr.Event, "dropped", n)
	}
}

func (s *session) writeLoop() {
	ticker := time.NewTicker(s.config.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case fr := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.writeTimeout))
			if err := s.conn.WriteJSON(fr); err != nil {
				s.logger.Debug("frame write failed", "error", err)
				s.close()
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.writeTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.close()
				return
			}

		case <-s.done:
			return
		}
	}
}

// readLoop services control traffic only; the bridge is one-directional and
// discards client payloads. It returns when the connection closes.
func (s *session) readLoop() {
	s.conn.SetReadLimit(s.config.readLimit)
	s.conn.SetReadDeadline(time.Now().Add(2 * s.config.pingInterval))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(2 * s.config.pingInterval))
		return nil
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Debug("read error", "error", err)
			}
			return
		}
	}
}

// close releases the subscription and the connection. Idempotent.
func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.scope.Close()
		s.conn.Close()
		s.logger.Debug("bridge session closed", "dropped", s.dropped.Load())
	})
}
