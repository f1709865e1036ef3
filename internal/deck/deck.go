package deck

import rand "math/rand/v2"

// Size is the number of cards in a full deck: per color, three 1s, two
// each of 2-4 and a single 5.
const Size = 50

// Deck represents an ordered collection of Hanabi cards
type Deck struct {
	cards []Card
}

// New creates a deck containing exactly the given cards in the given
// order. Used for replays and deterministic tests.
func New(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// NewShuffled returns a deck containing the full Hanabi distribution in a
// uniformly random order drawn from the provided RNG.
func NewShuffled(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, Size)}

	for _, color := range Colors {
		for number := 1; number <= MaxNumber; number++ {
			for i := 0; i < CardCount[number]; i++ {
				d.cards = append(d.cards, NewCard(color, number))
			}
		}
	}

	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})

	return d
}

// Draw removes and returns the top card from the deck. The second return
// value is false when the deck is empty; exhaustion is a normal game
// event, never an error.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
