package duplex

import "sync/atomic"

// idCounter is the global counter for emitter and subscription IDs.
var idCounter atomic.Uint64

// nextID returns a process-unique identifier.
func nextID() uint64 {
	return idCounter.Add(1)
}
