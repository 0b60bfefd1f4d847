// Package scope provides lifetime management for subscriptions.
//
// UI bindings repeat the same lifecycle: subscribe on mount, swap the
// subscription when the source changes, release everything on teardown.
// Scope and Slot factor that pattern out once.
//
// A Scope owns cancelers (subscriptions), cleanup functions, and child
// scopes. Closing a scope cancels everything it owns, children first, in
// reverse creation order:
//
//	sc := scope.New()
//	sc.Add(em.SubscribeEffects(onEffect))
//	sc.OnCleanup(func() { conn.Close() })
//	defer sc.Close()
//
// A Slot holds at most one live canceler and releases the previous one when
// a new one is bound, for bindings whose source emitter can be swapped:
//
//	slot := scope.NewSlot()
//	sc.Add(slot)
//	slot.Bind(oldEmitter.SubscribeEffects(onEffect))
//	slot.Bind(newEmitter.SubscribeEffects(onEffect)) // old subscription cancelled
package scope
