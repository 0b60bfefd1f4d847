// Package duplex provides a dual-channel state/effect emitter for
// UI-binding layers.
//
// An Emitter owns two independent channels over a single lifecycle:
//
//   - a durable state slot: the last value written with SetState is always
//     readable via State, including after disposal
//   - a broadcast effect channel: transient one-shot values (navigation,
//     dialogs, toasts) delivered to current subscribers and never stored
//
// # Core Type
//
// Emitter[S, E] is parameterized over the state type S and effect type E:
//
//	em := duplex.NewEmitter[CounterState, string](CounterState{})
//	sub := em.SubscribeEffects(func(e string) { fmt.Println("effect:", e) })
//	em.EmitEffect("saved")   // delivered synchronously to sub
//	em.SetState(CounterState{Count: 1})
//	sub.Cancel()
//	em.Dispose()
//	em.EmitEffect("late")    // silent no-op
//
// # Delivery Semantics
//
// EmitEffect and SetState deliver synchronously on the calling goroutine, in
// subscription order. Effects emitted with zero subscribers are dropped and
// never replayed. A subscription cancelled from within its own callback does
// not affect delivery to the remaining observers of the same dispatch.
//
// Observer callbacks are isolated: a panicking observer is recovered, logged,
// and does not prevent delivery to subsequent observers.
//
// # Lifecycle
//
// An Emitter is Active until Dispose is called, which is one-way and
// idempotent. After disposal, SetState and EmitEffect are inert, State keeps
// returning the frozen last value, and all subscriber references are released.
//
// # Thread Safety
//
// The emitter is safe for concurrent use, but the delivery model is designed
// for single-threaded UI event loops: callbacks run inline on whichever
// goroutine calls SetState or EmitEffect.
package duplex
