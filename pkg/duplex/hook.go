package duplex

// Channel identifies which of the emitter's two channels an observer
// belongs to.
type Channel string

const (
	ChannelState  Channel = "state"
	ChannelEffect Channel = "effect"
)

// DropReason explains why an emitted effect produced zero deliveries.
type DropReason string

const (
	// DropDisposed means the effect was emitted after Dispose.
	DropDisposed DropReason = "disposed"

	// DropNoObservers means no effect observers were subscribed at emit time.
	DropNoObservers DropReason = "no_observers"
)

// Hook receives instrumentation callbacks from an Emitter. Hooks are invoked
// synchronously during dispatch and must not block.
//
// The metrics package provides a Prometheus-backed implementation.
type Hook interface {
	// StateChanged is called after SetState delivered to its observers.
	StateChanged(delivered int)

	// EffectEmitted is called after EmitEffect delivered to at least one
	// observer.
	EffectEmitted(delivered int)

	// EffectDropped is called when an emitted effect reached nobody.
	EffectDropped(reason DropReason)

	// ObserverPanicked is called when an observer callback panicked and
	// was recovered during dispatch.
	ObserverPanicked(recovered any)

	// ObserverSubscribed is called when an observer is registered.
	ObserverSubscribed(ch Channel)

	// ObserverUnsubscribed is called when a subscription is cancelled or
	// released by Dispose.
	ObserverUnsubscribed(ch Channel)
}
