package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/lox/hanabi/internal/console"
	"github.com/lox/hanabi/internal/deck"
	"github.com/lox/hanabi/internal/game"
	"github.com/lox/hanabi/internal/randutil"
)

// PlayCmd runs an interactive console game
type PlayCmd struct {
	Players int   `default:"2" help:"Number of players (2-5)"`
	Seed    int64 `default:"0" help:"RNG seed (0 for random)"`
	Debug   bool  `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	if c.Players < 2 || c.Players > 5 {
		return fmt.Errorf("players must be between 2 and 5, got %d", c.Players)
	}

	logger := newLogger(c.Debug)

	seed := c.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}
	logger.Debug("Starting game", "players", c.Players, "seed", seed)

	names := make([]string, c.Players)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}

	g := game.New(names, deck.NewShuffled(randutil.New(seed)))
	if c.Debug {
		g.Events().Subscribe(game.NewLoggerObserver(logger))
	}

	// All console players share one stdin reader and each turn prompts
	// by name; the renderer is bound to this game instance alone.
	renderer := console.NewRenderer(g)
	stdin := bufio.NewReader(os.Stdin)
	agents := make([]game.Agent, c.Players)
	for i, name := range names {
		agents[i] = console.NewAgent(name, stdin, os.Stdout, renderer)
	}

	engine, err := game.NewEngine(g, agents, logger)
	if err != nil {
		return err
	}

	result, err := engine.Run()
	if err != nil {
		return err
	}

	fmt.Printf("\nGame over! Final score: %d / %d (%d bombs, %d turns)\n",
		result.Score, game.PerfectScore, result.Bombs, result.Turns)
	return nil
}
