package provider

// TestSequence is the deterministic sequence used by fixed-mode runs.
var TestSequence = []int{5, 6, 7, 8, 9, 4, 5, 3}

// Fixed replays a deterministic sequence, then reports exhaustion.
type Fixed struct {
	values []int
	next   int
}

// NewFixed creates a Fixed provider over a copy of values.
func NewFixed(values []int) *Fixed {
	copied := make([]int, len(values))
	copy(copied, values)
	return &Fixed{values: copied}
}

func (f *Fixed) HasNext() bool { return f.next < len(f.values) }

func (f *Fixed) Next() int {
	value := f.values[f.next]
	f.next++
	return value
}
