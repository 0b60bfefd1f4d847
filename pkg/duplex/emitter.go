package duplex

import (
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
)

// Emitter is a dual-channel value container: a durable state slot of type S
// and a broadcast effect channel of type E. See the package documentation for
// the delivery contract.
type Emitter[S, E any] struct {
	id   uint64
	name string

	// mu protects the state slot.
	mu    sync.RWMutex
	state S

	// equal is the optional distinct-until-changed predicate for SetState.
	// If nil, every SetState call notifies observers.
	equal func(S, S) bool

	// subMu protects both observer lists.
	subMu      sync.RWMutex
	stateSubs  []*Subscription[S]
	effectSubs []*Subscription[E]

	// disposed flips once, in Dispose.
	disposed atomic.Bool

	logger *slog.Logger
	hooks  []Hook
}

// NewEmitter creates an emitter holding initial as its current state.
func NewEmitter[S, E any](initial S, opts ...Option) *Emitter[S, E] {
	cfg := settings{}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	em := &Emitter[S, E]{
		id:     nextID(),
		name:   cfg.name,
		state:  initial,
		logger: cfg.logger,
		hooks:  cfg.hooks,
	}
	if em.name == "" {
		em.name = "emitter-" + strconv.FormatUint(em.id, 10)
	}
	return em
}

// WithStateEquals configures a distinct-until-changed predicate: SetState
// calls whose value equals the current state (per fn) skip observer
// notification. The state slot is still the last value set.
//
// Returns the emitter for chaining at construction:
//
//	em := duplex.NewEmitter[int, string](0).WithStateEquals(func(a, b int) bool { return a == b })
func (em *Emitter[S, E]) WithStateEquals(fn func(S, S) bool) *Emitter[S, E] {
	em.equal = fn
	return em
}

// ID returns the unique identifier for this emitter.
func (em *Emitter[S, E]) ID() uint64 {
	return em.id
}

// Name returns the emitter's name as used in logs and traces.
func (em *Emitter[S, E]) Name() string {
	return em.name
}

// Disposed reports whether Dispose has been called.
func (em *Emitter[S, E]) Disposed() bool {
	return em.disposed.Load()
}

// State returns the last value passed to SetState, or the initial value.
// It never fails and remains valid after Dispose.
func (em *Emitter[S, E]) State() S {
	em.mu.RLock()
	defer em.mu.RUnlock()
	return em.state
}

// SetState overwrites the durable state value and synchronously notifies
// state observers in subscription order. After Dispose it is a no-op.
func (em *Emitter[S, E]) SetState(state S) {
	if em.disposed.Load() {
		return
	}

	em.mu.Lock()
	if em.equal != nil && em.equal(em.state, state) {
		em.mu.Unlock()
		return
	}
	em.state = state
	em.mu.Unlock()

	em.subMu.RLock()
	subs := make([]*Subscription[S], len(em.stateSubs))
	copy(subs, em.stateSubs)
	em.subMu.RUnlock()

	delivered := 0
	for _, sub := range subs {
		if dispatch(em.logger, em.hooks, em.name, sub, state) {
			delivered++
		}
	}

	for _, h := range em.hooks {
		h.StateChanged(delivered)
	}
}

// EmitEffect publishes effect to every currently subscribed effect observer,
// synchronously in subscription order, and returns. Observers registered
// during the dispatch do not receive the in-flight effect. With zero
// observers, or after Dispose, the effect is silently dropped: no error, no
// buffering, no later replay.
func (em *Emitter[S, E]) EmitEffect(effect E) {
	if em.disposed.Load() {
		for _, h := range em.hooks {
			h.EffectDropped(DropDisposed)
		}
		return
	}

	em.subMu.RLock()
	subs := make([]*Subscription[E], len(em.effectSubs))
	copy(subs, em.effectSubs)
	em.subMu.RUnlock()

	if len(subs) == 0 {
		for _, h := range em.hooks {
			h.EffectDropped(DropNoObservers)
		}
		return
	}

	delivered := 0
	for _, sub := range subs {
		if dispatch(em.logger, em.hooks, em.name, sub, effect) {
			delivered++
		}
	}

	for _, h := range em.hooks {
		if delivered == 0 {
			h.EffectDropped(DropNoObservers)
		} else {
			h.EffectEmitted(delivered)
		}
	}
}

// SubscribeEffects registers an observer for the effect channel. Each active
// observer receives every effect emitted after its registration. The returned
// handle's Cancel removes it.
//
// Subscribing to a disposed emitter returns an inert, already-cancelled
// subscription.
func (em *Emitter[S, E]) SubscribeEffects(fn func(E), opts ...SubscribeOption[E]) *Subscription[E] {
	sub := &Subscription[E]{id: nextID(), fn: fn}
	for _, opt := range opts {
		opt.apply(sub)
	}

	if em.disposed.Load() {
		sub.cancelled.Store(true)
		return sub
	}

	sub.remove = func() {
		em.subMu.Lock()
		em.effectSubs = removeByID(em.effectSubs, sub.id)
		em.subMu.Unlock()
		for _, h := range em.hooks {
			h.ObserverUnsubscribed(ChannelEffect)
		}
	}

	em.subMu.Lock()
	em.effectSubs = append(em.effectSubs, sub)
	em.subMu.Unlock()

	for _, h := range em.hooks {
		h.ObserverSubscribed(ChannelEffect)
	}
	return sub
}

// SubscribeStates registers an observer for state changes. Observers are not
// called with the current value at registration time; read State for that.
func (em *Emitter[S, E]) SubscribeStates(fn func(S), opts ...SubscribeOption[S]) *Subscription[S] {
	sub := &Subscription[S]{id: nextID(), fn: fn}
	for _, opt := range opts {
		opt.apply(sub)
	}

	if em.disposed.Load() {
		sub.cancelled.Store(true)
		return sub
	}

	sub.remove = func() {
		em.subMu.Lock()
		em.stateSubs = removeByID(em.stateSubs, sub.id)
		em.subMu.Unlock()
		for _, h := range em.hooks {
			h.ObserverUnsubscribed(ChannelState)
		}
	}

	em.subMu.Lock()
	em.stateSubs = append(em.stateSubs, sub)
	em.subMu.Unlock()

	for _, h := range em.hooks {
		h.ObserverSubscribed(ChannelState)
	}
	return sub
}

// EffectObservers returns the number of active effect subscriptions.
func (em *Emitter[S, E]) EffectObservers() int {
	em.subMu.RLock()
	defer em.subMu.RUnlock()
	return len(em.effectSubs)
}

// StateObservers returns the number of active state subscriptions.
func (em *Emitter[S, E]) StateObservers() int {
	em.subMu.RLock()
	defer em.subMu.RUnlock()
	return len(em.stateSubs)
}

// Dispose marks the emitter terminal and releases all subscriber references.
// Subsequent EmitEffect and SetState calls are no-ops; State keeps returning
// the frozen last value. Dispose is idempotent.
func (em *Emitter[S, E]) Dispose() {
	if em.disposed.Swap(true) {
		return
	}

	em.subMu.Lock()
	stateSubs := em.stateSubs
	effectSubs := em.effectSubs
	em.stateSubs = nil
	em.effectSubs = nil
	em.subMu.Unlock()

	for _, sub := range stateSubs {
		if !sub.cancelled.Swap(true) {
			for _, h := range em.hooks {
				h.ObserverUnsubscribed(ChannelState)
			}
		}
	}
	for _, sub := range effectSubs {
		if !sub.cancelled.Swap(true) {
			for _, h := range em.hooks {
				h.ObserverUnsubscribed(ChannelEffect)
			}
		}
	}
}

// dispatch invokes one observer with v, honoring the cancelled flag and the
// subscription filter. A panicking observer is recovered and logged so the
// remaining observers of the same dispatch still receive the value.
// Reports whether the callback was invoked.
func dispatch[T any](logger *slog.Logger, hooks []Hook, name string, sub *Subscription[T], v T) (ok bool) {
	if sub.cancelled.Load() {
		return false
	}
	if sub.filter != nil && !sub.filter(v) {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			ok = false
			logger.Error("observer panic recovered",
				"emitter", name,
				"subscription", sub.id,
				"panic", r)
			for _, h := range hooks {
				h.ObserverPanicked(r)
			}
		}
	}()

	sub.fn(v)
	return true
}

// removeByID removes the subscription with the given ID, preserving
// registration order for the remaining observers.
func removeByID[T any](subs []*Subscription[T], id uint64) []*Subscription[T] {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i], subs[i+1:]...)
		}
	}
	return subs
}
