package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hanabi/internal/deck"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// scriptedAgent returns the same move every turn.
type scriptedAgent struct {
	move Move
}

func (a scriptedAgent) ChooseMove(view View, seat int) Move {
	return a.move
}

// eventRecorder captures published events in order.
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

func TestEngineRosterMismatch(t *testing.T) {
	g := New(rosterNames(2), deck.New())
	_, err := NewEngine(g, []Agent{scriptedAgent{}}, testLogger())
	require.Error(t, err)
}

// Every hand holds only unplayable cards and both agents are forced to
// play, so bombs accumulate one per turn and the game ends exactly when
// the limit is hit, regardless of the cards still in the deck.
func TestForcedBombsFinishGame(t *testing.T) {
	cards := make([]deck.Card, 0, 14)
	for i := 0; i < 7; i++ {
		cards = append(cards, deck.NewCard(deck.Blue, 3), deck.NewCard(deck.Red, 4))
	}
	g := New(rosterNames(2), deck.New(cards...))

	recorder := &eventRecorder{}
	g.Events().Subscribe(recorder)

	agents := []Agent{
		scriptedAgent{move: Move{Type: MovePlay, Index: 0}},
		scriptedAgent{move: Move{Type: MovePlay, Index: 0}},
	}
	engine, err := NewEngine(g, agents, testLogger())
	require.NoError(t, err)

	result, err := engine.Run()
	require.NoError(t, err)

	assert.Equal(t, MaxBombs, result.Bombs)
	assert.Equal(t, MaxBombs, result.Turns)
	assert.Equal(t, -MaxBombs, result.Score)
	assert.False(t, result.Perfect)
	assert.False(t, g.deck.IsEmpty(), "game must end on bombs, not exhaustion")

	types := recorder.types()
	require.Len(t, types, 5)
	for i := 0; i < 4; i++ {
		assert.Equal(t, EventTypeBombTriggered, types[i])
	}
	assert.Equal(t, EventTypeGameFinished, types[4])
}

// A single seat that discards every turn walks the deck down to empty
// and then plays out the final lap.
func TestEngineFinalLap(t *testing.T) {
	cards := []deck.Card{
		deck.NewCard(deck.Blue, 3),
		deck.NewCard(deck.Blue, 4),
		deck.NewCard(deck.Red, 3),
		deck.NewCard(deck.Red, 4),
		deck.NewCard(deck.White, 3),
		deck.NewCard(deck.White, 4),
	}
	g := New(rosterNames(1), deck.New(cards...))

	recorder := &eventRecorder{}
	g.Events().Subscribe(recorder)

	agents := []Agent{scriptedAgent{move: Move{Type: MoveDiscard, Index: 0}}}
	engine, err := NewEngine(g, agents, testLogger())
	require.NoError(t, err)

	result, err := engine.Run()
	require.NoError(t, err)

	// The second discard's refill drains the deck and arms a one-turn
	// lap, which that same turn consumes.
	assert.Equal(t, 2, result.Turns)
	assert.Equal(t, 0, result.Score)

	types := recorder.types()
	assert.Contains(t, types, EventTypeDeckExhausted)
	assert.Equal(t, EventTypeGameFinished, types[len(types)-1])
}

// A structurally invalid move aborts the run for this trial.
func TestEngineInvalidMoveAborts(t *testing.T) {
	g := New(rosterNames(1), deck.New(
		deck.NewCard(deck.Blue, 1),
		deck.NewCard(deck.Blue, 2),
		deck.NewCard(deck.Blue, 3),
		deck.NewCard(deck.Blue, 4),
	))

	agents := []Agent{scriptedAgent{move: Move{Type: MovePlay, Index: 99}}}
	engine, err := NewEngine(g, agents, testLogger())
	require.NoError(t, err)

	_, err = engine.Run()
	require.ErrorIs(t, err, ErrInvalidCardIndex)
}

// One seat holds blue 1-4 with the 5 next in the deck, so the blue stack
// completes in order. Only one color completes, so the game ends by
// exhaustion rather than by perfect score.
func TestEnginePlaysOutStack(t *testing.T) {
	g := New(rosterNames(1), deck.New(
		deck.NewCard(deck.Blue, 1),
		deck.NewCard(deck.Blue, 2),
		deck.NewCard(deck.Blue, 3),
		deck.NewCard(deck.Blue, 4),
		deck.NewCard(deck.Blue, 5),
		deck.NewCard(deck.Red, 3),
		deck.NewCard(deck.Red, 4),
		deck.NewCard(deck.White, 3),
		deck.NewCard(deck.White, 4),
	))

	agents := []Agent{scriptedAgent{move: Move{Type: MovePlay, Index: 0}}}
	engine, err := NewEngine(g, agents, testLogger())
	require.NoError(t, err)

	result, err := engine.Run()
	require.NoError(t, err)

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 5, result.Turns)
	assert.Equal(t, 0, result.Bombs)
	assert.Equal(t, deck.MaxNumber, g.Stacks()[deck.Blue])
	// Completing the stack granted a hint, clamped at the cap.
	assert.Equal(t, MaxHints, g.HintsRemaining())
}
