package game

import (
	"fmt"

	"github.com/lox/hanabi/internal/deck"
)

const (
	// CardsPerPlayer is the hand size each player is dealt and refilled
	// to while the deck lasts.
	CardsPerPlayer = 4

	// MaxHints is the hint cap, and the number available at the start.
	MaxHints = 8

	// MaxBombs is the number of mistaken plays that ends the game.
	MaxBombs = 4

	// PerfectScore is the score of a flawless game: every color stacked
	// to its highest number.
	PerfectScore = deck.NumColors * deck.MaxNumber
)

// Game encapsulates a single round of Hanabi: the cards that have been
// played and discarded, every player's hand, and the hint and bomb
// counters. A Game owns its deck and all card instances; it is created
// once per round and discarded after the score is read.
type Game struct {
	deck     *deck.Deck
	stacks   map[deck.Color]int
	discards []deck.Card
	players  []string
	hands    [][]deck.Card
	hints    int
	bombs    int
	bus      EventBus

	// turnsRemaining counts down the final lap once the deck empties.
	// Negative means the countdown has not been armed yet.
	turnsRemaining int
}

// New creates a game for the given roster and deals CardsPerPlayer cards
// to each player from the provided deck. The roster is fixed for the
// lifetime of the game.
func New(players []string, d *deck.Deck) *Game {
	// Every color gets an explicit zero entry so the all-colors-present
	// invariant never depends on map default-insertion.
	stacks := make(map[deck.Color]int, deck.NumColors)
	for _, color := range deck.Colors {
		stacks[color] = 0
	}

	g := &Game{
		deck:           d,
		stacks:         stacks,
		players:        players,
		hands:          make([][]deck.Card, len(players)),
		hints:          MaxHints,
		bus:            NewEventBus(),
		turnsRemaining: -1,
	}

	for i := 0; i < CardsPerPlayer; i++ {
		for seat := range players {
			card, ok := g.deck.Draw()
			if !ok {
				break
			}
			g.hands[seat] = append(g.hands[seat], card)
		}
	}

	return g
}

// Events returns the bus that game state changes are published on.
func (g *Game) Events() EventBus {
	return g.bus
}

// Players returns the fixed player roster in seat order.
func (g *Game) Players() []string {
	out := make([]string, len(g.players))
	copy(out, g.players)
	return out
}

// PlayCard plays the card at the given index of the player's hand. A
// playable card extends its color's stack (and grants a hint when it
// completes the stack); anything else is a bomb and lands in the discard
// pile. The returned bool reports whether the play succeeded; a failed
// play is a normal game outcome, not an error. The hand is then refilled
// from the deck if any cards remain.
func (g *Game) PlayCard(seat, index int) (bool, error) {
	card, err := g.removeCard(seat, index)
	if err != nil {
		return false, err
	}

	if !g.IsPlayable(card) {
		g.bombs++
		g.discards = append(g.discards, card)
		g.refill(seat)
		g.bus.Publish(NewBombTriggeredEvent(g.players[seat], card, g.bombs))
		return false, nil
	}

	g.stacks[card.Color] = card.Number
	if card.Number == deck.MaxNumber {
		// Completing a stack earns the team a hint back.
		if err := g.SetHintsRemaining(g.hints + 1); err != nil {
			return false, err
		}
	}
	g.refill(seat)
	g.bus.Publish(NewCardPlayedEvent(g.players[seat], card, g.stacks[card.Color]))
	return true, nil
}

// DiscardCard discards the card at the given index of the player's hand,
// refills the hand from the deck and grants a hint (clamped at the cap).
func (g *Game) DiscardCard(seat, index int) error {
	card, err := g.removeCard(seat, index)
	if err != nil {
		return err
	}

	g.discards = append(g.discards, card)
	g.refill(seat)
	if err := g.SetHintsRemaining(g.hints + 1); err != nil {
		return err
	}
	g.bus.Publish(NewCardDiscardedEvent(g.players[seat], card, g.hints))
	return nil
}

// UseHint consumes one hint on behalf of the given seat. In this
// simulation hints carry no encoded information; they are only a
// resource. Returns ErrInvalidHintCount when none remain.
func (g *Game) UseHint(seat int) error {
	if err := g.SetHintsRemaining(g.hints - 1); err != nil {
		return err
	}
	g.bus.Publish(NewHintUsedEvent(g.players[seat], g.hints))
	return nil
}

// HintsRemaining returns the number of available hints.
func (g *Game) HintsRemaining() int {
	return g.hints
}

// SetHintsRemaining sets the hint count. Values above MaxHints clamp
// silently to the cap, since the hint bonus overshooting it is a normal
// occurrence. A negative value is a contract violation and fails with
// ErrInvalidHintCount, leaving the count unchanged.
func (g *Game) SetHintsRemaining(hints int) error {
	if hints < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHintCount, hints)
	}
	if hints > MaxHints {
		hints = MaxHints
	}
	g.hints = hints
	return nil
}

// Bombs returns the number of mistaken plays so far.
func (g *Game) Bombs() int {
	return g.bombs
}

// Score returns the sum of all stack heights minus the bomb penalty. It
// may be negative when mistakes precede any successful play.
func (g *Game) Score() int {
	return g.stackTotal() - g.bombs
}

func (g *Game) stackTotal() int {
	total := 0
	for _, height := range g.stacks {
		total += height
	}
	return total
}

// IsFinished reports whether the game is over: the bomb limit was hit, a
// perfect score was reached, or the final lap after deck exhaustion has
// been played out.
func (g *Game) IsFinished() bool {
	if g.bombs >= MaxBombs {
		return true
	}
	if g.stackTotal() == PerfectScore {
		return true
	}
	return g.deck.IsEmpty() && g.turnsRemaining == 0
}

// IsPlayable reports whether the card would extend its color's stack.
func (g *Game) IsPlayable(card deck.Card) bool {
	return card.Number == g.stacks[card.Color]+1
}

// IsValidCardIndex reports whether the index addresses a card in the
// given seat's hand.
func (g *Game) IsValidCardIndex(seat, index int) bool {
	if seat < 0 || seat >= len(g.hands) {
		return false
	}
	return index >= 0 && index < len(g.hands[seat])
}

// Stacks returns a copy of the per-color stack heights.
func (g *Game) Stacks() map[deck.Color]int {
	out := make(map[deck.Color]int, len(g.stacks))
	for color, height := range g.stacks {
		out[color] = height
	}
	return out
}

// Discards returns a copy of the discard pile in discard order.
func (g *Game) Discards() []deck.Card {
	out := make([]deck.Card, len(g.discards))
	copy(out, g.discards)
	return out
}

// Hand returns a copy of the given seat's hand in hand order.
func (g *Game) Hand(seat int) []deck.Card {
	out := make([]deck.Card, len(g.hands[seat]))
	copy(out, g.hands[seat])
	return out
}

// OtherHands returns copies of every hand except the given seat's, keyed
// by player name. Callers may inspect but never mutate game state
// through the result.
func (g *Game) OtherHands(seat int) map[string][]deck.Card {
	out := make(map[string][]deck.Card, len(g.players)-1)
	for other := range g.players {
		if other == seat {
			continue
		}
		out[g.players[other]] = g.Hand(other)
	}
	return out
}

// CardsRemaining returns the number of cards left in the deck.
func (g *Game) CardsRemaining() int {
	return g.deck.CardsRemaining()
}

// TurnsRemaining returns the final-lap countdown. ok is false until the
// deck first empties and the countdown is armed.
func (g *Game) TurnsRemaining() (int, bool) {
	if g.turnsRemaining < 0 {
		return 0, false
	}
	return g.turnsRemaining, true
}

// EndTurn decrements the final-lap countdown once it has been armed.
// The Engine calls this exactly once per turn.
func (g *Game) EndTurn() {
	if g.turnsRemaining > 0 {
		g.turnsRemaining--
	}
}

// removeCard validates the index against the seat's current hand and
// removes the card, preserving the order of the rest.
func (g *Game) removeCard(seat, index int) (deck.Card, error) {
	if !g.IsValidCardIndex(seat, index) {
		return deck.Card{}, fmt.Errorf("%w: seat %d index %d", ErrInvalidCardIndex, seat, index)
	}

	hand := g.hands[seat]
	card := hand[index]
	g.hands[seat] = append(hand[:index], hand[index+1:]...)
	return card, nil
}

// refill deals one card to the seat. A no-op when the deck is empty;
// exhaustion arms the final-lap countdown instead of raising an error.
func (g *Game) refill(seat int) {
	if card, ok := g.deck.Draw(); ok {
		g.hands[seat] = append(g.hands[seat], card)
	}

	if g.deck.IsEmpty() && g.turnsRemaining < 0 {
		g.turnsRemaining = len(g.players)
		g.bus.Publish(NewDeckExhaustedEvent(g.turnsRemaining))
	}
}
