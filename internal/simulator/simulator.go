// Package simulator runs batches of independent games and aggregates
// their scores.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hanabi/internal/bot"
	"github.com/lox/hanabi/internal/deck"
	"github.com/lox/hanabi/internal/game"
	"github.com/lox/hanabi/internal/randutil"
	"github.com/lox/hanabi/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Trials  int
	Players int
	Seed    int64
	Workers int // Defaults to GOMAXPROCS when zero
	Logger  *log.Logger
	Clock   quartz.Clock // Defaults to the real clock when nil
}

// Simulator runs independent game trials and merges their statistics
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes the configured number of trials and returns the merged
// statistics along with the elapsed wall time. Trials are independent,
// so they are fanned out across workers; each worker accumulates a local
// Statistics which are merged at the join point.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, time.Duration, error) {
	if s.config.Trials < 1 {
		return nil, 0, fmt.Errorf("trials must be positive, got %d", s.config.Trials)
	}

	start := s.config.Clock.Now()

	workers := s.config.Workers
	if workers > s.config.Trials {
		workers = s.config.Trials
	}

	results := make(chan *statistics.Statistics, workers)
	eg, ctx := errgroup.WithContext(ctx)

	trialsPerWorker := s.config.Trials / workers
	remainder := s.config.Trials % workers

	next := 0
	for w := 0; w < workers; w++ {
		count := trialsPerWorker
		if w < remainder {
			count++
		}
		first := next
		next += count

		eg.Go(func() error {
			local := &statistics.Statistics{}
			for trial := first; trial < first+count; trial++ {
				// Every trial gets an independent, reproducible seed.
				result, err := s.runTrial(s.config.Seed + int64(trial))
				if err != nil {
					return fmt.Errorf("trial %d: %w", trial, err)
				}
				local.Add(result)

				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}

			results <- local
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	close(results)

	stats := &statistics.Statistics{}
	for local := range results {
		stats.Merge(local)
	}

	if err := stats.Validate(); err != nil {
		return nil, 0, fmt.Errorf("statistics validation failed: %w", err)
	}

	return stats, s.config.Clock.Since(start), nil
}

// runTrial plays one game with an all-omniscient roster
func (s *Simulator) runTrial(seed int64) (statistics.TrialResult, error) {
	rng := randutil.New(seed)

	names := make([]string, s.config.Players)
	agents := make([]game.Agent, s.config.Players)
	for i := range names {
		names[i] = fmt.Sprintf("Bot%d", i+1)
		agents[i] = bot.NewOmniscient(s.config.Logger)
	}

	g := game.New(names, deck.NewShuffled(rng))
	g.Events().Subscribe(game.NewLoggerObserver(s.config.Logger))

	engine, err := game.NewEngine(g, agents, s.config.Logger)
	if err != nil {
		return statistics.TrialResult{}, err
	}

	result, err := engine.Run()
	if err != nil {
		return statistics.TrialResult{}, fmt.Errorf("seed %d: %w", seed, err)
	}

	return statistics.TrialResult{
		Score:     result.Score,
		Seed:      seed,
		Turns:     result.Turns,
		Bombs:     result.Bombs,
		BombedOut: result.Bombs >= game.MaxBombs,
		Win:       result.Perfect,
	}, nil
}

// PrintSummary prints a summary of simulation results to stdout
func PrintSummary(stats *statistics.Statistics, elapsed time.Duration) {
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== SIMULATION RESULTS ===\n")
	fmt.Printf("Trials: %d\n", stats.Trials)
	fmt.Printf("Elapsed: %s (%.0f games/sec)\n", elapsed.Round(time.Millisecond),
		float64(stats.Trials)/elapsed.Seconds())

	fmt.Printf("\n=== SCORES ===\n")
	fmt.Printf("Mean: %.3f / %d\n", stats.Mean(), game.PerfectScore)
	fmt.Printf("Median: %.1f\n", stats.Median())
	fmt.Printf("Std Dev: %.3f\n", stats.StdDev())
	fmt.Printf("Std Error: %.4f\n", stats.StdError())
	fmt.Printf("95%% CI: [%.3f, %.3f]\n", low, high)
	fmt.Printf("Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25),
		stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Printf("\n=== OUTCOMES ===\n")
	fmt.Printf("Wins (score %d): %d (%.2f%%)\n", game.PerfectScore, stats.Wins, stats.WinRate()*100)
	fmt.Printf("Bomb-outs: %d (%.2f%%)\n", stats.BombOuts,
		float64(stats.BombOuts)/float64(stats.Trials)*100)
	fmt.Printf("Mean turns per game: %.1f\n", stats.MeanTurns())
}
