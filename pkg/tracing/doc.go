// Package tracing wraps a duplex emitter with OpenTelemetry spans.
//
// The wrapper adds context-aware variants of the two dispatch operations;
// everything else delegates to the wrapped emitter:
//
//	traced := tracing.Wrap(em, tracing.WithTracerName("myapp"))
//	traced.EmitEffect(ctx, uievent.Success("saved"))
//	traced.SetState(ctx, next)
//
// Each call opens a span ("duplex.EmitEffect" or "duplex.SetState") covering
// the synchronous observer dispatch, with the emitter name and the Go type of
// the dispatched value as attributes.
package tracing
