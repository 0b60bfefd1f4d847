package bridge

import (
	"log/slog"
	"net/http"
	"time"
)

// config holds per-handler settings.
type config struct {
	logger       *slog.Logger
	writeTimeout time.Duration
	pingInterval time.Duration
	readLimit    int64
	sendBuffer   int
	checkOrigin  func(*http.Request) bool
}

func defaultConfig() config {
	return config{
		logger:       slog.Default(),
		writeTimeout: 10 * time.Second,
		pingInterval: 30 * time.Second,
		readLimit:    1 << 10,
		sendBuffer:   64,
	}
}

// Option configures a bridge handler.
type Option func(*config)

// WithLogger sets the logger for connection lifecycle and drop diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithWriteTimeout bounds each frame write. Default 10s.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) {
		c.writeTimeout = d
	}
}

// WithPingInterval sets how often keepalive pings are sent. Default 30s.
func WithPingInterval(d time.Duration) Option {
	return func(c *config) {
		c.pingInterval = d
	}
}

// WithSendBuffer sets the per-connection outbound frame buffer. When the
// buffer is full, further effects are dropped for that connection. Default 64.
func WithSendBuffer(n int) Option {
	return func(c *config) {
		c.sendBuffer = n
	}
}

// WithCheckOrigin sets the WebSocket origin check. By default the upgrader's
// same-origin policy applies.
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(c *config) {
		c.checkOrigin = fn
	}
}
