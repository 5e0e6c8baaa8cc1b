package provider

import "math/rand"

const (
	deckMaxValue  = 10
	deckSuitCount = 4
	deckCardCount = deckMaxValue * deckSuitCount
)

// Deck deals from a shuffled finite deck: each value 1..10 appears
// exactly four times and is consumed without replacement. The session
// ends when the deck runs out.
type Deck struct {
	cards []int
	next  int
}

// NewDeck builds and shuffles a full deck.
func NewDeck() *Deck {
	cards := make([]int, 0, deckCardCount)
	for suit := 0; suit < deckSuitCount; suit++ {
		for value := 1; value <= deckMaxValue; value++ {
			cards = append(cards, value)
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

func (d *Deck) HasNext() bool { return d.next < len(d.cards) }

func (d *Deck) Next() int {
	value := d.cards[d.next]
	d.next++
	return value
}
