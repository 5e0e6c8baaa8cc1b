package provider

import "math/rand"

// Random yields an unbounded stream of uniform values in 1..10.
type Random struct{}

// NewRandom creates a Random provider.
func NewRandom() *Random { return &Random{} }

func (*Random) HasNext() bool { return true }

func (*Random) Next() int { return rand.Intn(deckMaxValue) + 1 }
