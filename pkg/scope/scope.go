package scope

import (
	"sync"
	"sync/atomic"
)

// Canceler is anything whose lifetime a Scope can manage.
// duplex.Subscription and Slot both implement it.
type Canceler interface {
	Cancel()
}

// Scope owns cancelers, cleanup functions, and child scopes, and releases
// all of them when closed. Scopes form a hierarchy mirroring the owning UI
// structure: closing a parent closes its children first.
type Scope struct {
	id uint64

	parent *Scope

	mu        sync.Mutex
	cancelers []Canceler
	cleanups  []func()
	children  []*Scope

	closed atomic.Bool
}

var scopeIDs atomic.Uint64

// New creates a root scope.
func New() *Scope {
	return &Scope{id: scopeIDs.Add(1)}
}

// NewChild creates a scope that is closed automatically when its parent is.
func (s *Scope) NewChild() *Scope {
	child := &Scope{id: scopeIDs.Add(1), parent: s}

	s.mu.Lock()
	alreadyClosed := s.closed.Load()
	if !alreadyClosed {
		s.children = append(s.children, child)
	}
	s.mu.Unlock()

	if alreadyClosed {
		child.closed.Store(true)
	}
	return child
}

// ID returns the unique identifier for this scope.
func (s *Scope) ID() uint64 {
	return s.id
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	return s.closed.Load()
}

// Add hands ownership of c to the scope. If the scope is already closed,
// c is cancelled immediately.
func (s *Scope) Add(c Canceler) {
	if c == nil {
		return
	}
	if s.closed.Load() {
		c.Cancel()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelers = append(s.cancelers, c)
}

// OnCleanup registers a function to run when the scope is closed.
// On an already-closed scope the function runs immediately.
func (s *Scope) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	if s.closed.Load() {
		fn()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanups = append(s.cleanups, fn)
}

// Close releases everything the scope owns: children first, then cancelers,
// then cleanup functions, each in reverse registration order. Close is
// idempotent.
func (s *Scope) Close() {
	if s.closed.Swap(true) {
		return
	}

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	s.mu.Lock()
	children := s.children
	cancelers := s.cancelers
	cleanups := s.cleanups
	s.children = nil
	s.cancelers = nil
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Close()
	}
	for i := len(cancelers) - 1; i >= 0; i-- {
		cancelers[i].Cancel()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// Cancel is an alias for Close so a Scope can itself be owned by a parent
// structure that manages Cancelers.
func (s *Scope) Cancel() {
	s.Close()
}

func (s *Scope) removeChild(child *Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}
