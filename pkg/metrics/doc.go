// Package metrics provides a Prometheus-backed instrumentation hook for
// duplex emitters.
//
// The hook implements duplex.Hook and can be shared by any number of
// emitters:
//
//	hook := metrics.New()
//	em := duplex.NewEmitter[State, Effect](initial, duplex.WithHook(hook))
//
// Metrics collected:
//   - duplex_state_changes_total: Counter of SetState dispatches
//   - duplex_state_deliveries_total: Counter of individual state observer deliveries
//   - duplex_effects_emitted_total: Counter of effects delivered to >= 1 observer
//   - duplex_effect_deliveries_total: Counter of individual observer deliveries
//   - duplex_effects_dropped_total: Counter of dropped effects by reason
//   - duplex_observer_panics_total: Counter of recovered observer panics
//   - duplex_active_observers: Gauge of live subscriptions by channel
//
// New registers with prometheus.DefaultRegisterer unless WithRegistry is
// given; create at most one hook per registry.
package metrics
