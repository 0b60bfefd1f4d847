package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/duplex-dev/duplex/pkg/duplex"
)

// Config configures the Prometheus hook.
type Config struct {
	// Namespace is the metrics namespace (default: "duplex").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the Prometheus hook.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "duplex",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Hook is a duplex.Hook backed by Prometheus collectors.
type Hook struct {
	stateChanges     prometheus.Counter
	stateDeliveries  prometheus.Counter
	effectsEmitted   prometheus.Counter
	effectDeliveries prometheus.Counter
	effectsDropped   *prometheus.CounterVec
	observerPanics   prometheus.Counter
	activeObservers  *prometheus.GaugeVec
}

var _ duplex.Hook = (*Hook)(nil)

// New creates a Prometheus hook and registers its collectors.
func New(opts ...Option) *Hook {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Hook{
		stateChanges: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "state_changes_total",
			Help:        "Total number of state changes dispatched",
			ConstLabels: config.ConstLabels,
		}),

		stateDeliveries: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "state_deliveries_total",
			Help:        "Total number of individual state observer deliveries",
			ConstLabels: config.ConstLabels,
		}),

		effectsEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effects_emitted_total",
			Help:        "Total number of effects delivered to at least one observer",
			ConstLabels: config.ConstLabels,
		}),

		effectDeliveries: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effect_deliveries_total",
			Help:        "Total number of individual observer deliveries",
			ConstLabels: config.ConstLabels,
		}),

		effectsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effects_dropped_total",
			Help:        "Total number of effects that reached no observer, by reason",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),

		observerPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "observer_panics_total",
			Help:        "Total number of recovered observer panics",
			ConstLabels: config.ConstLabels,
		}),

		activeObservers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_observers",
			Help:        "Number of live subscriptions by channel",
			ConstLabels: config.ConstLabels,
		}, []string{"channel"}),
	}
}

// StateChanged implements duplex.Hook.
func (h *Hook) StateChanged(delivered int) {
	h.stateChanges.Inc()
	h.stateDeliveries.Add(float64(delivered))
}

// EffectEmitted implements duplex.Hook.
func (h *Hook) EffectEmitted(delivered int) {
	h.effectsEmitted.Inc()
	h.effectDeliveries.Add(float64(delivered))
}

// EffectDropped implements duplex.Hook.
func (h *Hook) EffectDropped(reason duplex.DropReason) {
	h.effectsDropped.WithLabelValues(string(reason)).Inc()
}

// ObserverPanicked implements duplex.Hook.
func (h *Hook) ObserverPanicked(any) {
	h.observerPanics.Inc()
}

// ObserverSubscribed implements duplex.Hook.
func (h *Hook) ObserverSubscribed(ch duplex.Channel) {
	h.activeObservers.WithLabelValues(string(ch)).Inc()
}

// ObserverUnsubscribed implements duplex.Hook.
func (h *Hook) ObserverUnsubscribed(ch duplex.Channel) {
	h.activeObservers.WithLabelValues(string(ch)).Dec()
}
