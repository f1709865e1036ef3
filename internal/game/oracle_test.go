package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/hanabi/internal/deck"
	"github.com/lox/hanabi/internal/randutil"
)

// A card at or below its color's stack height has already been
// superseded and can never be needed again.
func TestIsCardUsefulAlreadyPlayed(t *testing.T) {
	for stackHeight := 1; stackHeight <= 5; stackHeight++ {
		for cardNumber := 1; cardNumber <= 5; cardNumber++ {
			name := fmt.Sprintf("stack=%d card=%d", stackHeight, cardNumber)
			t.Run(name, func(t *testing.T) {
				g := New(rosterNames(2), deck.NewShuffled(randutil.New(1)))
				g.stacks[deck.Blue] = stackHeight

				card := deck.NewCard(deck.Blue, cardNumber)
				assert.Equal(t, cardNumber > stackHeight, g.IsCardUseful(card))
			})
		}
	}
}

// A card is dead once every copy of any lower number of its color has
// been discarded, permanently blocking the color's progression.
func TestIsCardUsefulKilledByDiscard(t *testing.T) {
	for killedNumber := 1; killedNumber <= 4; killedNumber++ {
		t.Run(fmt.Sprintf("killed=%d", killedNumber), func(t *testing.T) {
			g := New(rosterNames(2), deck.New())

			for i := 0; i < deck.CardCount[killedNumber]; i++ {
				g.discards = append(g.discards, deck.NewCard(deck.Blue, killedNumber))
			}

			assert.False(t, g.IsCardUseful(deck.NewCard(deck.Blue, 5)))

			// Only that color's chain is broken.
			assert.True(t, g.IsCardUseful(deck.NewCard(deck.Red, 5)))
		})
	}
}

func TestIsCardUsefulPartialDiscard(t *testing.T) {
	g := New(rosterNames(2), deck.New())

	// Two of the three blue 1s gone: blue is still reachable.
	g.discards = append(g.discards,
		deck.NewCard(deck.Blue, 1),
		deck.NewCard(deck.Blue, 1),
	)
	assert.True(t, g.IsCardUseful(deck.NewCard(deck.Blue, 2)))

	// The last copy kills everything above it.
	g.discards = append(g.discards, deck.NewCard(deck.Blue, 1))
	assert.False(t, g.IsCardUseful(deck.NewCard(deck.Blue, 2)))
	assert.False(t, g.IsCardUseful(deck.NewCard(deck.Blue, 5)))
}

func TestIsCardUsefulPlayedCopiesDoNotBlock(t *testing.T) {
	g := New(rosterNames(2), deck.New())

	// blue 1 is on the stack and the two spare copies are discarded; the
	// chain above it is intact.
	g.stacks[deck.Blue] = 1
	g.discards = append(g.discards,
		deck.NewCard(deck.Blue, 1),
		deck.NewCard(deck.Blue, 1),
	)
	assert.True(t, g.IsCardUseful(deck.NewCard(deck.Blue, 2)))
	assert.True(t, g.IsCardUseful(deck.NewCard(deck.Blue, 5)))
}
