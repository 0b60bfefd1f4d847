package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duplex-dev/duplex/pkg/duplex"
)

// Default tracer name for duplex emitters.
const defaultTracerName = "duplex"

// Config configures the tracing wrapper.
type Config struct {
	// TracerName is the name of the tracer (default: "duplex").
	TracerName string

	// AttributeExtractor extracts custom attributes added to every span.
	AttributeExtractor func(ctx context.Context) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// Option configures the tracing wrapper.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ctx context.Context) []attribute.KeyValue) Option {
	return func(c *Config) {
		c.AttributeExtractor = extractor
	}
}

// Emitter is a traced view over a duplex.Emitter.
type Emitter[S, E any] struct {
	inner  *duplex.Emitter[S, E]
	config Config
}

// Wrap creates a traced view of em. The wrapped emitter remains usable
// directly; the wrapper only instruments calls made through it.
func Wrap[S, E any](em *duplex.Emitter[S, E], opts ...Option) *Emitter[S, E] {
	config := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return &Emitter[S, E]{inner: em, config: config}
}

// Unwrap returns the underlying emitter.
func (t *Emitter[S, E]) Unwrap() *duplex.Emitter[S, E] {
	return t.inner
}

// EmitEffect dispatches effect inside a span covering the synchronous
// observer callbacks.
func (t *Emitter[S, E]) EmitEffect(ctx context.Context, effect E) {
	ctx, span := t.config.tracer.Start(ctx, "duplex.EmitEffect",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("duplex.emitter", t.inner.Name()),
			attribute.String("duplex.effect_type", fmt.Sprintf("%T", effect)),
			attribute.Bool("duplex.disposed", t.inner.Disposed()),
			attribute.Int("duplex.observers", t.inner.EffectObservers()),
		))
	defer span.End()

	if t.config.AttributeExtractor != nil {
		span.SetAttributes(t.config.AttributeExtractor(ctx)...)
	}

	t.inner.EmitEffect(effect)
}

// SetState updates the durable state inside a span covering the synchronous
// observer callbacks.
func (t *Emitter[S, E]) SetState(ctx context.Context, state S) {
	ctx, span := t.config.tracer.Start(ctx, "duplex.SetState",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("duplex.emitter", t.inner.Name()),
			attribute.String("duplex.state_type", fmt.Sprintf("%T", state)),
			attribute.Bool("duplex.disposed", t.inner.Disposed()),
			attribute.Int("duplex.observers", t.inner.StateObservers()),
		))
	defer span.End()

	if t.config.AttributeExtractor != nil {
		span.SetAttributes(t.config.AttributeExtractor(ctx)...)
	}

	t.inner.SetState(state)
}

// State returns the wrapped emitter's current state.
func (t *Emitter[S, E]) State() S {
	return t.inner.State()
}
