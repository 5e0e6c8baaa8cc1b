package history

// Cursor walks the ring oldest to newest. It snapshots the ring's
// bounds at creation: it never mutates the ring, and it stays safe to
// use (though its values go stale) if the ring is mutated underneath
// it. Callers should not interleave mutation with a walk. Restart by
// calling Forward again.
type Cursor[T comparable] struct {
	data  []T
	tail  int
	count int
	step  int
}

// Forward returns a cursor positioned at the oldest element.
func (r *Ring[T]) Forward() Cursor[T] {
	return Cursor[T]{data: r.data, tail: r.tail, count: r.count}
}

// Valid reports whether the cursor still points at a live element.
func (c *Cursor[T]) Valid() bool { return c.step < c.count }

// Next advances toward the newest element. Advancing an exhausted
// cursor is a no-op.
func (c *Cursor[T]) Next() {
	if c.Valid() {
		c.step++
	}
}

// Value returns the element under the cursor. Only meaningful while
// Valid.
func (c *Cursor[T]) Value() T {
	return c.data[(c.tail+c.step)%len(c.data)]
}

// ReverseCursor walks the ring newest to oldest. Same snapshot and
// restart semantics as Cursor.
type ReverseCursor[T comparable] struct {
	data        []T
	virtualHead int
	count       int
	step        int
}

// Reverse returns a cursor positioned at the newest element.
// When the ring has wrapped (head physically below tail) the head used
// for offset arithmetic is shifted up by the capacity, so subtracting
// a logical offset always lands on the right physical slot.
func (r *Ring[T]) Reverse() ReverseCursor[T] {
	virtualHead := r.head
	if r.head < r.tail {
		virtualHead += len(r.data)
	}
	return ReverseCursor[T]{data: r.data, virtualHead: virtualHead, count: r.count}
}

// Valid reports whether the cursor still points at a live element.
func (c *ReverseCursor[T]) Valid() bool { return c.step < c.count }

// Next advances toward the oldest element. Advancing an exhausted
// cursor is a no-op.
func (c *ReverseCursor[T]) Next() {
	if c.Valid() {
		c.step++
	}
}

// Value returns the element under the cursor. Only meaningful while
// Valid.
func (c *ReverseCursor[T]) Value() T {
	return c.data[(c.virtualHead-c.step)%len(c.data)]
}
