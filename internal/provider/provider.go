// Package provider supplies the stimulus values a session presents.
package provider

import "fmt"

// Provider yields one stimulus value per session cycle.
// Next must only be called after HasNext has reported true for this
// call; providers are stateful and consecutive calls may return
// different values.
type Provider interface {
	HasNext() bool
	Next() int
}

// Kind selects one of the known provider variants. The set is closed:
// exactly one provider is active per session and the factory rejects
// anything else.
type Kind string

const (
	KindDeck   Kind = "deck"   // shuffled finite card deck
	KindRandom Kind = "random" // unbounded uniform values
	KindFixed  Kind = "fixed"  // deterministic test sequence
)

// New returns an owned instance of the requested variant.
func New(kind Kind) (Provider, error) {
	switch kind {
	case KindDeck:
		return NewDeck(), nil
	case KindRandom:
		return NewRandom(), nil
	case KindFixed:
		return NewFixed(TestSequence), nil
	default:
		return nil, fmt.Errorf("provider: unknown kind %q", kind)
	}
}
