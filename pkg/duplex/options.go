package duplex

import "log/slog"

// settings holds the non-generic configuration applied by Options.
type settings struct {
	name   string
	logger *slog.Logger
	hooks  []Hook
}

// Option configures an Emitter at construction time.
type Option interface {
	isOption()
	apply(*settings)
}

type optionFunc func(*settings)

func (f optionFunc) isOption()         {}
func (f optionFunc) apply(s *settings) { f(s) }

// WithName sets a name used in log records and trace attributes.
// Unnamed emitters log under their numeric ID.
func WithName(name string) Option {
	return optionFunc(func(s *settings) {
		s.name = name
	})
}

// WithLogger sets the logger used for observer panics and dispatch
// diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(s *settings) {
		s.logger = logger
	})
}

// WithHook attaches an instrumentation hook. Multiple hooks are invoked in
// the order they were attached.
func WithHook(h Hook) Option {
	return optionFunc(func(s *settings) {
		if h != nil {
			s.hooks = append(s.hooks, h)
		}
	})
}

// SubscribeOption configures a single subscription.
type SubscribeOption[T any] interface {
	isSubscribeOption()
	apply(*Subscription[T])
}

type subscribeOptionFunc[T any] func(*Subscription[T])

func (f subscribeOptionFunc[T]) isSubscribeOption()       {}
func (f subscribeOptionFunc[T]) apply(s *Subscription[T]) { f(s) }

// WithFilter restricts a subscription to values accepted by pred. The
// predicate runs before the callback; rejected values are skipped for this
// observer only and still count as delivered to others.
func WithFilter[T any](pred func(T) bool) SubscribeOption[T] {
	return subscribeOptionFunc[T](func(s *Subscription[T]) {
		s.filter = pred
	})
}
