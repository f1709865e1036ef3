package main

import (
	"context"

	"github.com/lox/hanabi/internal/config"
	"github.com/lox/hanabi/internal/randutil"
	"github.com/lox/hanabi/internal/simulator"
)

// SimulateCmd runs a batch of independent trials and reports statistics
type SimulateCmd struct {
	Config  string `short:"c" default:"hanabi.hcl" help:"Path to HCL simulation config"`
	Trials  int    `default:"0" help:"Number of games to simulate (overrides config)"`
	Players int    `default:"0" help:"Number of players per game (overrides config)"`
	Seed    int64  `default:"0" help:"Base RNG seed (overrides config; random when unset)"`
	Workers int    `default:"0" help:"Parallel workers (overrides config; 0 = all CPUs)"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := newLogger(c.Debug)

	cfg, err := config.LoadSimConfig(c.Config)
	if err != nil {
		return err
	}

	// Command line overrides
	if c.Trials > 0 {
		cfg.Simulation.Trials = c.Trials
	}
	if c.Players > 0 {
		cfg.Roster.Players = c.Players
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.Workers > 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}

	logger.Info("Starting simulation",
		"trials", cfg.Simulation.Trials,
		"players", cfg.Roster.Players,
		"strategy", cfg.Roster.Strategy,
		"seed", seed,
	)

	sim := simulator.New(simulator.Config{
		Trials:  cfg.Simulation.Trials,
		Players: cfg.Roster.Players,
		Seed:    seed,
		Workers: cfg.Simulation.Workers,
		Logger:  logger,
	})

	stats, elapsed, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	simulator.PrintSummary(stats, elapsed)
	return nil
}
