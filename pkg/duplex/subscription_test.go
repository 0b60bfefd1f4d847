package duplex

import "testing"

func TestSubscriptionCancelIdempotent(t *testing.T) {
	em := NewEmitter[int, string](0)

	count := 0
	sub := em.SubscribeEffects(func(string) { count++ })

	sub.Cancel()
	sub.Cancel() // must not panic or double-remove

	em.EmitEffect("x")
	if count != 0 {
		t.Errorf("expected no delivery after cancel, got %d", count)
	}
	if sub.Active() {
		t.Error("expected subscription inactive after cancel")
	}
}

func TestSubscriptionIDsUnique(t *testing.T) {
	em := NewEmitter[int, string](0)

	a := em.SubscribeEffects(func(string) {})
	b := em.SubscribeEffects(func(string) {})

	if a.ID() == b.ID() {
		t.Errorf("expected unique subscription IDs, both are %d", a.ID())
	}
}

func TestSubscribeAfterDispose(t *testing.T) {
	em := NewEmitter[int, string](0)
	em.Dispose()

	count := 0
	sub := em.SubscribeEffects(func(string) { count++ })

	if sub.Active() {
		t.Error("expected subscription on disposed emitter to be pre-cancelled")
	}
	sub.Cancel() // must be safe

	em.EmitEffect("x")
	if count != 0 {
		t.Errorf("expected no delivery on disposed emitter, got %d", count)
	}
	if em.EffectObservers() != 0 {
		t.Errorf("expected no observers retained, got %d", em.EffectObservers())
	}
}

func TestCancelPreservesOrder(t *testing.T) {
	em := NewEmitter[int, string](0)

	var order []string
	em.SubscribeEffects(func(string) { order = append(order, "a") })
	b := em.SubscribeEffects(func(string) { order = append(order, "b") })
	em.SubscribeEffects(func(string) { order = append(order, "c") })

	b.Cancel()
	em.EmitEffect("x")

	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("expected remaining observers in registration order [a c], got %v", order)
	}
}
