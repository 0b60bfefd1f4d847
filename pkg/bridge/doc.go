// Package bridge forwards an emitter's effects to browser clients over a
// WebSocket connection.
//
// Each connection gets its own effect subscription, held by a scope that is
// closed when the connection goes away, so the subscribe-on-connect /
// unsubscribe-on-disconnect lifecycle cannot leak. Effects are encoded as
// JSON event frames:
//
//	{"event": "duplex:toast", "detail": {"level": "success", "message": "Saved"}}
//
// matching the shape of a DOM CustomEvent, so the client handler stays a
// one-liner:
//
//	ws.onmessage = (m) => {
//	    const { event, detail } = JSON.parse(m.data);
//	    window.dispatchEvent(new CustomEvent(event, { detail }));
//	};
//
// Delivery keeps the emitter's fire-and-forget contract end to end: a slow
// client's full send buffer drops frames (counted and logged) rather than
// blocking the dispatch or buffering unboundedly.
//
// Mounting on a chi router:
//
//	r.Get("/ws", bridge.Handler(em, bridge.UIEvents).ServeHTTP)
package bridge
