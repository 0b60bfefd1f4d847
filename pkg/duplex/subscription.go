package duplex

import "sync/atomic"

// Subscription is the handle returned by SubscribeEffects and
// SubscribeStates. Cancelling it removes the observer from the emitter.
type Subscription[T any] struct {
	id uint64

	// fn is the observer callback.
	fn func(T)

	// filter is the optional accept predicate set by WithFilter.
	filter func(T) bool

	// cancelled is set once, by Cancel or by the emitter's Dispose.
	cancelled atomic.Bool

	// remove detaches this subscription from the owning emitter.
	// nil for subscriptions created after disposal.
	remove func()
}

// Cancel removes the observer from the emitter. It is idempotent and safe to
// call from within the observer's own callback: the remaining observers of an
// in-flight dispatch still receive the value.
func (s *Subscription[T]) Cancel() {
	if s.cancelled.Swap(true) {
		return
	}
	if s.remove != nil {
		s.remove()
	}
}

// Active reports whether the subscription still receives values.
func (s *Subscription[T]) Active() bool {
	return !s.cancelled.Load()
}

// ID returns the unique identifier for this subscription.
func (s *Subscription[T]) ID() uint64 {
	return s.id
}
