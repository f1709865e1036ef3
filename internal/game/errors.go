package game

import "errors"

var (
	// ErrInvalidCardIndex is returned by PlayCard and DiscardCard when the
	// index falls outside the acting player's current hand. The engine
	// validates this itself rather than trusting a caller's earlier
	// IsValidCardIndex check.
	ErrInvalidCardIndex = errors.New("card index outside hand bounds")

	// ErrInvalidHintCount is returned when the hint count would be set
	// below zero. This is a contract violation, not a recoverable game
	// event; the offending operation leaves the game untouched.
	ErrInvalidHintCount = errors.New("hint count may not be negative")
)
