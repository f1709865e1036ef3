package game

import "github.com/lox/hanabi/internal/deck"

// MoveType enumerates the actions a strategy can take on its turn
type MoveType int

const (
	// MoveNone passes the turn. Only legitimate when the acting player's
	// hand is empty during the final lap.
	MoveNone MoveType = iota
	// MovePlay plays the card at Move.Index
	MovePlay
	// MoveDiscard discards the card at Move.Index
	MoveDiscard
	// MoveHint consumes one hint and ends the turn
	MoveHint
)

// String returns the string representation of a move type
func (mt MoveType) String() string {
	switch mt {
	case MoveNone:
		return "none"
	case MovePlay:
		return "play"
	case MoveDiscard:
		return "discard"
	case MoveHint:
		return "hint"
	default:
		return "?"
	}
}

// Move represents a strategy's decision for one turn
type Move struct {
	Type      MoveType
	Index     int    // Hand index for plays and discards
	Reasoning string // Human-readable explanation
}

// View is the read-only query surface a strategy may consult while
// choosing a move. It is implemented by *Game; agents receive it instead
// of the Game so they cannot mutate state. The Engine applies moves.
type View interface {
	Hand(seat int) []deck.Card
	OtherHands(seat int) map[string][]deck.Card
	Stacks() map[deck.Color]int
	Discards() []deck.Card
	HintsRemaining() int
	CardsRemaining() int
	TurnsRemaining() (int, bool)
	Score() int
	IsPlayable(card deck.Card) bool
	IsCardUseful(card deck.Card) bool
	IsValidCardIndex(seat, index int) bool
}

// Agent represents any entity (human or AI) that chooses moves for a
// seat. Agents receive read-only game state and return decisions - no
// state mutation allowed.
type Agent interface {
	// ChooseMove analyzes the view from the given seat and returns the
	// move to make this turn.
	ChooseMove(view View, seat int) Move
}
