// Package persist snapshots an emitter's durable state to a backing store,
// so UI state survives process restarts and session resumes.
//
// A Snapshotter subscribes to the emitter's state channel and saves a JSON
// snapshot of every new state under a fixed key:
//
//	store := persist.NewMemoryStore() // or persist.NewS3Store(client, bucket, prefix)
//	snap := persist.Attach[AppState](em, store, "session/"+sessionID)
//	defer snap.Close()
//
// Restore loads the last snapshot, typically before constructing the
// emitter:
//
//	state, ok, err := persist.Restore[AppState](ctx, store, "session/"+sessionID)
//	if !ok {
//	    state = defaultState()
//	}
//	em := duplex.NewEmitter[AppState, uievent.Event](state)
//
// Only state is persisted. Effects are transient by contract and are never
// written to the store.
package persist
