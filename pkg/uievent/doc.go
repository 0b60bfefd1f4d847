// Package uievent defines a closed set of one-shot UI effect variants:
// navigation, toasts, and dialogs.
//
// The variants form a sealed union: every Event value is one of the concrete
// types declared here, so consumers dispatch with an exhaustive type switch
// (via Dispatch and Handlers) instead of runtime type inspection.
//
// # Emitting
//
// Events are plain values, typically used as the effect type of a
// duplex.Emitter:
//
//	em := duplex.NewEmitter[AppState, uievent.Event](initial)
//	em.EmitEffect(uievent.Success("Changes saved"))
//	em.EmitEffect(uievent.Navigate{To: "/projects"})
//
// # Consuming
//
// Handlers gives one callback per variant; unset callbacks ignore their
// variant:
//
//	em.SubscribeEffects(func(ev uievent.Event) {
//	    uievent.Dispatch(ev, uievent.Handlers{
//	        Navigate: func(n uievent.Navigate) { router.Go(n.To) },
//	        Toast:    func(to uievent.Toast) { tray.Show(to) },
//	    })
//	})
//
// # Wire Format
//
// For transports that forward effects to a browser (see the bridge package),
// every event exposes a wire name ("duplex:navigate", "duplex:toast", ...)
// and a Detail payload suitable for a DOM CustomEvent.
package uievent
