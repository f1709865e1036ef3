// Package bot provides the built-in AI strategies.
package bot

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/hanabi/internal/deck"
	"github.com/lox/hanabi/internal/game"
)

// Omniscient is a perfect-information strategy: it sees its own hand and
// decides with a fixed four-tier priority. It represents a theoretical
// upper bound for this rule set, not a realistic player: hints are
// burned as a pure resource, never used to convey information.
type Omniscient struct {
	logger *log.Logger
}

// NewOmniscient creates a new omniscient strategy instance
func NewOmniscient(logger *log.Logger) *Omniscient {
	return &Omniscient{logger: logger}
}

// ChooseMove applies the tiers in order:
//  1. play the lowest-numbered playable card,
//  2. discard the first card that can never be played,
//  3. burn a hint if any remain,
//  4. discard the card whose number has the largest total supply.
//
// Ties within a tier break by hand order. None of the tiers can produce
// a domain error given a non-empty hand; an empty hand passes the turn.
func (o *Omniscient) ChooseMove(view game.View, seat int) game.Move {
	hand := view.Hand(seat)
	if len(hand) == 0 {
		return game.Move{Type: game.MoveNone, Reasoning: "empty hand after deck exhaustion"}
	}

	// Tier 1: completing low rungs first unblocks the most future plays.
	best := -1
	for i, card := range hand {
		if !view.IsPlayable(card) {
			continue
		}
		if best < 0 || card.Number < hand[best].Number {
			best = i
		}
	}
	if best >= 0 {
		return game.Move{
			Type:      game.MovePlay,
			Index:     best,
			Reasoning: fmt.Sprintf("%s is playable", hand[best]),
		}
	}

	// Tier 2: a dead card costs nothing to discard and buys a hint.
	for i, card := range hand {
		if !view.IsCardUseful(card) {
			return game.Move{
				Type:      game.MoveDiscard,
				Index:     i,
				Reasoning: fmt.Sprintf("%s can never be played", card),
			}
		}
	}

	// Tier 3: stall on a hint rather than give up a live card.
	if view.HintsRemaining() > 0 {
		return game.Move{Type: game.MoveHint, Reasoning: "no playable or dead card, burning a hint"}
	}

	// Tier 4: forced to discard a live card; give up the one with the
	// most copies still in circulation.
	best = 0
	for i := 1; i < len(hand); i++ {
		if deck.CardCount[hand[i].Number] > deck.CardCount[hand[best].Number] {
			best = i
		}
	}
	return game.Move{
		Type:      game.MoveDiscard,
		Index:     best,
		Reasoning: fmt.Sprintf("forced discard, %s is the most replaceable", hand[best]),
	}
}
