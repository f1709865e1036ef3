// Package config provides HCL configuration parsing for simulation runs.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SimConfig represents the complete simulation configuration
type SimConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Roster     RosterSettings     `hcl:"roster,block"`
}

// SimulationSettings contains batch-run settings
type SimulationSettings struct {
	Trials  int   `hcl:"trials,optional"`
	Seed    int64 `hcl:"seed,optional"`
	Workers int   `hcl:"workers,optional"`
}

// RosterSettings describes the players seated in each trial
type RosterSettings struct {
	Players  int    `hcl:"players,optional"`
	Strategy string `hcl:"strategy,optional"`
}

// DefaultSimConfig returns the default simulation configuration
func DefaultSimConfig() *SimConfig {
	return &SimConfig{
		Simulation: SimulationSettings{
			Trials:  1000,
			Seed:    0,
			Workers: 0, // Auto-detect
		},
		Roster: RosterSettings{
			Players:  4,
			Strategy: "omniscient",
		},
	}
}

// LoadSimConfig loads simulation configuration from an HCL file. A
// missing file yields the defaults; fields left at their zero value in
// the file are also filled from the defaults.
func LoadSimConfig(filename string) (*SimConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultSimConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config SimConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultSimConfig()
	if config.Simulation.Trials == 0 {
		config.Simulation.Trials = defaults.Simulation.Trials
	}
	if config.Roster.Players == 0 {
		config.Roster.Players = defaults.Roster.Players
	}
	if config.Roster.Strategy == "" {
		config.Roster.Strategy = defaults.Roster.Strategy
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration for values the simulator cannot run
// with.
func (c *SimConfig) Validate() error {
	if c.Simulation.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", c.Simulation.Trials)
	}
	if c.Roster.Players < 2 || c.Roster.Players > 5 {
		return fmt.Errorf("players must be between 2 and 5, got %d", c.Roster.Players)
	}
	if c.Roster.Strategy != "omniscient" {
		return fmt.Errorf("unknown strategy %q", c.Roster.Strategy)
	}
	return nil
}
