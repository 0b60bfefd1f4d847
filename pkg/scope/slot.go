package scope

import "sync"

// Slot holds at most one live Canceler. Binding a new one releases the
// previous one first, which is the swap step of the subscribe-on-mount /
// resubscribe-on-change / release-on-teardown lifecycle.
//
// Slot implements Canceler, so it can be handed to a Scope.
type Slot struct {
	mu      sync.Mutex
	current Canceler
	closed  bool
}

// NewSlot creates an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Bind replaces the slot's canceler, cancelling the previous one. Binding to
// a closed slot cancels c immediately.
func (s *Slot) Bind(c Canceler) {
	s.mu.Lock()
	prev := s.current
	if s.closed {
		s.current = nil
	} else {
		s.current = c
	}
	closed := s.closed
	s.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}
	if closed && c != nil {
		c.Cancel()
	}
}

// Cancel releases the current canceler and marks the slot closed. Further
// Bind calls cancel their argument immediately. Cancel is idempotent.
func (s *Slot) Cancel() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	prev := s.current
	s.current = nil
	s.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}
}

// Bound reports whether the slot currently holds a canceler.
func (s *Slot) Bound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}
