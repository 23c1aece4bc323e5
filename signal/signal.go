// Package signal provides a synchronous broadcast registry.
//
// A Signal holds an ordered set of subscribers. Emit calls every subscriber
// in connection order on the calling goroutine and returns only after the
// last one has returned. There is no queueing and no asynchronous dispatch.
//
// Subscribers are identified by the Connection returned from Connect. An
// observer that goes away must call Disconnect in its own teardown so the
// registry never holds a dangling callback.
//
//	var changed signal.Signal[struct{}]
//	conn := changed.Connect(func(struct{}) { redraw() })
//	defer conn.Disconnect()
//	changed.Emit(struct{}{})
package signal

import "sync"

// Signal is a broadcast channel carrying values of type T.
// The zero value is ready to use. A Signal must not be copied after first use.
type Signal[T any] struct {
	mu    sync.Mutex
	next  uint64
	slots []slot[T]
}

type slot[T any] struct {
	id uint64
	fn func(T)
}

// registry is implemented by every Signal instantiation so that
// Connection does not need a type parameter.
type registry interface {
	disconnect(id uint64)
	connected(id uint64) bool
}

// Connection identifies one subscription on a Signal.
// The zero Connection is valid and Disconnect on it is a no-op.
type Connection struct {
	sig registry
	id  uint64
}

// Connect registers fn and returns the Connection that identifies it.
// A nil fn is ignored and yields the zero Connection.
func (s *Signal[T]) Connect(fn func(T)) Connection {
	if fn == nil {
		return Connection{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.slots = append(s.slots, slot[T]{id: s.next, fn: fn})
	return Connection{sig: s, id: s.next}
}

// Emit delivers v to every subscriber connected at the time of the call.
//
// The subscriber list is snapshotted before dispatch: subscribers connected
// during Emit are not called, and subscribers disconnected during Emit by an
// earlier callback are skipped.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	snapshot := make([]slot[T], len(s.slots))
	copy(snapshot, s.slots)
	s.mu.Unlock()

	for _, sl := range snapshot {
		if !s.connected(sl.id) {
			continue
		}
		sl.fn(v)
	}
}

// Len returns the number of connected subscribers.
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

func (s *Signal[T]) connected(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sl := range s.slots {
		if sl.id == id {
			return true
		}
	}
	return false
}

func (s *Signal[T]) disconnect(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sl := range s.slots {
		if sl.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

// Disconnect removes the subscription. It is safe to call more than once.
func (c Connection) Disconnect() {
	if c.sig == nil {
		return
	}
	c.sig.disconnect(c.id)
}

// Connected reports whether the subscription is still registered.
func (c Connection) Connected() bool {
	if c.sig == nil {
		return false
	}
	return c.sig.connected(c.id)
}
