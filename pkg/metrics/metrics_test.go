package metrics

import (
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/duplex-dev/duplex/pkg/duplex"
)

func newTestHook(t *testing.T) *Hook {
	t.Helper()
	return New(WithRegistry(prometheus.NewRegistry()))
}

func TestHookCountsEffects(t *testing.T) {
	hook := newTestHook(t)
	em := duplex.NewEmitter[int, string](0, duplex.WithHook(hook))

	em.SubscribeEffects(func(string) {})
	em.SubscribeEffects(func(string) {})
	em.EmitEffect("x")

	if got := testutil.ToFloat64(hook.effectsEmitted); got != 1 {
		t.Errorf("expected 1 emitted effect, got %v", got)
	}
	if got := testutil.ToFloat64(hook.effectDeliveries); got != 2 {
		t.Errorf("expected 2 deliveries, got %v", got)
	}
}

func TestHookCountsDrops(t *testing.T) {
	hook := newTestHook(t)
	em := duplex.NewEmitter[int, string](0, duplex.WithHook(hook))

	em.EmitEffect("nobody")
	em.Dispose()
	em.EmitEffect("late")

	noObs := hook.effectsDropped.WithLabelValues(string(duplex.DropNoObservers))
	disposed := hook.effectsDropped.WithLabelValues(string(duplex.DropDisposed))

	if got := testutil.ToFloat64(noObs); got != 1 {
		t.Errorf("expected 1 no-observer drop, got %v", got)
	}
	if got := testutil.ToFloat64(disposed); got != 1 {
		t.Errorf("expected 1 disposed drop, got %v", got)
	}
}

func TestHookCountsStateChanges(t *testing.T) {
	hook := newTestHook(t)
	em := duplex.NewEmitter[int, string](0, duplex.WithHook(hook))

	em.SubscribeStates(func(int) {})
	em.SetState(1)
	em.SetState(2)

	if got := testutil.ToFloat64(hook.stateChanges); got != 2 {
		t.Errorf("expected 2 state changes, got %v", got)
	}
	if got := testutil.ToFloat64(hook.stateDeliveries); got != 2 {
		t.Errorf("expected 2 state deliveries, got %v", got)
	}
}

func TestHookCountsPanics(t *testing.T) {
	hook := newTestHook(t)
	em := duplex.NewEmitter[int, string](0,
		duplex.WithHook(hook),
		duplex.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	em.SubscribeEffects(func(string) { panic("bug") })
	em.EmitEffect("x")

	if got := testutil.ToFloat64(hook.observerPanics); got != 1 {
		t.Errorf("expected 1 recorded panic, got %v", got)
	}
}

func TestHookObserverGauge(t *testing.T) {
	hook := newTestHook(t)
	em := duplex.NewEmitter[int, string](0, duplex.WithHook(hook))

	sub := em.SubscribeEffects(func(string) {})
	em.SubscribeStates(func(int) {})

	effectGauge := hook.activeObservers.WithLabelValues(string(duplex.ChannelEffect))
	stateGauge := hook.activeObservers.WithLabelValues(string(duplex.ChannelState))

	if got := testutil.ToFloat64(effectGauge); got != 1 {
		t.Errorf("expected 1 effect observer, got %v", got)
	}

	sub.Cancel()
	if got := testutil.ToFloat64(effectGauge); got != 0 {
		t.Errorf("expected gauge back to 0 after cancel, got %v", got)
	}

	em.Dispose()
	if got := testutil.ToFloat64(stateGauge); got != 0 {
		t.Errorf("expected gauge back to 0 after dispose, got %v", got)
	}
}

func TestHookNamespaceOption(t *testing.T) {
	registry := prometheus.NewRegistry()
	hook := New(WithRegistry(registry), WithNamespace("myapp"), WithSubsystem("ui"))

	em := duplex.NewEmitter[int, string](0, duplex.WithHook(hook))
	em.SubscribeEffects(func(string) {})
	em.EmitEffect("x")

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	found := false
	for _, f := range families {
		if f.GetName() == "myapp_ui_effects_emitted_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected namespaced metric myapp_ui_effects_emitted_total")
	}
}
