package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Engine drives the turn loop for one game: it asks the current seat's
// agent for a move, applies it, and rotates. It is shared between
// interactive play and batch simulation.
type Engine struct {
	game   *Game
	agents []Agent
	logger *log.Logger
}

// NewEngine creates an engine for the game with one agent per seat, in
// roster order.
func NewEngine(game *Game, agents []Agent, logger *log.Logger) (*Engine, error) {
	if len(agents) != len(game.players) {
		return nil, fmt.Errorf("agent count %d does not match roster size %d", len(agents), len(game.players))
	}
	return &Engine{
		game:   game,
		agents: agents,
		logger: logger,
	}, nil
}

// Result contains the outcome of a completed game
type Result struct {
	Score   int
	Bombs   int
	Turns   int
	Perfect bool // All five stacks completed
}

// Run plays the game to completion and returns the result. Structural
// misuse by an agent (a move with an out-of-bounds index, or a hint with
// none remaining) aborts the run with an error; a failed play is a
// normal outcome and never surfaces here.
func (e *Engine) Run() (*Result, error) {
	seat := 0
	turns := 0

	// The finish condition is checked before each turn, never mid-turn.
	for !e.game.IsFinished() {
		move := e.agents[seat].ChooseMove(e.game, seat)
		if err := e.apply(seat, move); err != nil {
			return nil, fmt.Errorf("turn %d (%s): %w", turns+1, e.game.players[seat], err)
		}

		e.game.EndTurn()
		turns++
		seat = (seat + 1) % len(e.agents)
	}

	result := &Result{
		Score:   e.game.Score(),
		Bombs:   e.game.Bombs(),
		Turns:   turns,
		Perfect: e.game.Score() == PerfectScore,
	}
	e.game.Events().Publish(NewGameFinishedEvent(result.Score, result.Bombs))
	return result, nil
}

func (e *Engine) apply(seat int, move Move) error {
	player := e.game.players[seat]

	switch move.Type {
	case MovePlay:
		success, err := e.game.PlayCard(seat, move.Index)
		if err != nil {
			return err
		}
		e.logger.Debug("Play", "player", player, "index", move.Index, "success", success, "reasoning", move.Reasoning)
		return nil
	case MoveDiscard:
		if err := e.game.DiscardCard(seat, move.Index); err != nil {
			return err
		}
		e.logger.Debug("Discard", "player", player, "index", move.Index, "reasoning", move.Reasoning)
		return nil
	case MoveHint:
		if err := e.game.UseHint(seat); err != nil {
			return err
		}
		e.logger.Debug("Hint", "player", player, "reasoning", move.Reasoning)
		return nil
	case MoveNone:
		e.logger.Debug("Pass", "player", player, "reasoning", move.Reasoning)
		return nil
	default:
		return fmt.Errorf("unknown move type %d", move.Type)
	}
}
