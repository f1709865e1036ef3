package game

import "github.com/lox/hanabi/internal/deck"

// IsCardUseful reports whether the card could still be played at some
// point in the future. A card is dead once its number is at or below its
// color's stack height, or once every copy of any lower number it still
// depends on sits in the discard pile, which permanently breaks the
// 1-through-5 prerequisite chain for that color.
func (g *Game) IsCardUseful(card deck.Card) bool {
	if card.Number <= g.stacks[card.Color] {
		return false
	}

	for number := card.Number - 1; number >= 1; number-- {
		discarded := 0
		for _, d := range g.discards {
			if d.Color == card.Color && d.Number == number {
				discarded++
			}
		}
		if discarded == deck.CardCount[number] {
			return false
		}
	}

	return true
}
