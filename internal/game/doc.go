// Package game implements the core Hanabi rule engine.
//
// The main type is Game, which owns the deck, the per-player hands, the
// play stacks, the discard pile and the hint/bomb counters for a single
// round. All mutation goes through PlayCard, DiscardCard and UseHint;
// everything else on Game is a read-only query.
//
// # Basic Usage
//
// Create and run a game between strategies:
//
//	rng := randutil.New(42) // Fixed seed
//	g := game.New([]string{"Alice", "Bob"}, deck.NewShuffled(rng))
//	engine := game.NewEngine(g, agents, logger)
//	result, err := engine.Run()
//
// # Architecture
//
// Strategies implement the Agent interface: they inspect the game's
// read-only View and return a Move, and the Engine applies it. Agents
// never mutate game state themselves. State changes are published as
// typed events on the game's EventBus so that loggers and renderers stay
// out of the decision logic.
//
// Each Game is fully self-contained, so independent games can run
// concurrently with no coordination.
package game
