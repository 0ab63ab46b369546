// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import "sync"

// Value is an observable field. Subscribers are called with the current
// value when they subscribe and again after every change.
type Value[T comparable] struct {
	mu     sync.Mutex
	v      T
	nextID int
	subs   map[int]func(T)
}

// NewValue creates an observable holding v
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{v: v, subs: make(map[int]func(T))}
}

// Get returns the current value
func (s *Value[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

// Set stores v and notifies subscribers if it changed
func (s *Value[T]) Set(v T) {
	s.Update(func(T) T { return v })
}

// Update applies fn to the current value
func (s *Value[T]) Update(fn func(T) T) {
	s.mu.Lock()
	old := s.v
	s.v = fn(old)
	if s.v == old {
		s.mu.Unlock()
		return
	}
	v, subs := s.v, s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn and returns a function that removes it
func (s *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	v := s.v
	s.mu.Unlock()

	fn(v)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// snapshot copies the subscriber list in registration order.
// Callers hold s.mu.
func (s *Value[T]) snapshot() []func(T) {
	subs := make([]func(T), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}
