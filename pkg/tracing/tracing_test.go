package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/duplex-dev/duplex/pkg/duplex"
)

func TestWrapDelegatesDispatch(t *testing.T) {
	em := duplex.NewEmitter[int, string](0, duplex.WithName("traced"))
	traced := Wrap(em)

	var got []string
	em.SubscribeEffects(func(e string) { got = append(got, e) })

	traced.EmitEffect(context.Background(), "x")
	if len(got) != 1 || got[0] != "x" {
		t.Errorf("expected effect delivered through wrapper, got %v", got)
	}

	traced.SetState(context.Background(), 7)
	if traced.State() != 7 {
		t.Errorf("expected state 7, got %d", traced.State())
	}
}

func TestWrapAfterDispose(t *testing.T) {
	em := duplex.NewEmitter[int, string](3)
	traced := Wrap(em)
	em.Dispose()

	traced.EmitEffect(context.Background(), "late") // must stay a no-op
	traced.SetState(context.Background(), 9)

	if traced.State() != 3 {
		t.Errorf("expected frozen state 3, got %d", traced.State())
	}
}

func TestAttributeExtractor(t *testing.T) {
	em := duplex.NewEmitter[int, string](0)

	calls := 0
	traced := Wrap(em,
		WithTracerName("test"),
		WithAttributeExtractor(func(context.Context) []attribute.KeyValue {
			calls++
			return []attribute.KeyValue{attribute.String("session", "s1")}
		}))

	traced.EmitEffect(context.Background(), "x")
	traced.SetState(context.Background(), 1)

	if calls != 2 {
		t.Errorf("expected extractor called per dispatch, got %d", calls)
	}
}

func TestUnwrap(t *testing.T) {
	em := duplex.NewEmitter[int, string](0)
	traced := Wrap(em)

	if traced.Unwrap() != em {
		t.Error("expected Unwrap to return the wrapped emitter")
	}
}
