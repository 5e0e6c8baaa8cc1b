package history

import "fmt"

// Ring is a fixed-capacity queue that preserves insertion order.
// Enqueue writes at the head, Dequeue reads at the tail, and both wrap
// around the backing array. The empty state is kept distinct from the
// full state by storing a head sentinel instead of a valid index, so
// head==tail never has to be disambiguated by callers.
type Ring[T comparable] struct {
	data  []T
	head  int // index of the newest element, or emptyHead
	tail  int // index of the oldest element
	count int
}

// emptyHead marks a ring with no elements. It is never a valid index.
const emptyHead = -1

// New creates a Ring holding at most capacity elements.
// It panics if capacity is less than one.
func New[T comparable](capacity int) *Ring[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("history: invalid ring capacity %d", capacity))
	}
	return &Ring[T]{
		data: make([]T, capacity),
		head: emptyHead,
	}
}

// Count returns the number of live elements.
func (r *Ring[T]) Count() int { return r.count }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.data) }

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool { return r.head == emptyHead }

// Full reports whether a further Enqueue would overflow.
func (r *Ring[T]) Full() bool {
	return !r.Empty() && (r.head+1)%len(r.data) == r.tail
}

// Enqueue appends value as the newest element.
// Enqueueing into a full ring is a contract violation and panics;
// callers must Dequeue first, as the session loop does.
func (r *Ring[T]) Enqueue(value T) {
	if r.count >= len(r.data) {
		panic("history: enqueue into full ring")
	}
	r.head = (r.head + 1) % len(r.data)
	r.count++
	r.data[r.head] = value
}

// Dequeue removes and returns the oldest element.
// Dequeueing from an empty ring is a contract violation and panics.
// Removing the last element resets the ring to the canonical empty
// state instead of merely decrementing, so the head sentinel is
// restored and full/empty can never be confused.
func (r *Ring[T]) Dequeue() T {
	if r.count <= 0 {
		panic("history: dequeue from empty ring")
	}
	value := r.data[r.tail]
	if r.tail == r.head {
		r.Clear()
	} else {
		r.tail = (r.tail + 1) % len(r.data)
		r.count--
	}
	return value
}

// Clear resets the ring to the canonical empty state.
func (r *Ring[T]) Clear() {
	r.count = 0
	r.tail = 0
	r.head = emptyHead
}

// Values returns the live elements oldest to newest.
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.count)
	for it := r.Forward(); it.Valid(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}
