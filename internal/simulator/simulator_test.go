package simulator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hanabi/internal/game"
)

func testConfig(trials, workers int, seed int64) Config {
	return Config{
		Trials:  trials,
		Players: 4,
		Seed:    seed,
		Workers: workers,
		Logger:  log.New(io.Discard),
	}
}

func TestRunAccumulatesAllTrials(t *testing.T) {
	stats, elapsed, err := New(testConfig(25, 4, 42)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25, stats.Trials)
	assert.Len(t, stats.Values, 25)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	require.NoError(t, stats.Validate())

	// Scores are bounded by the rules regardless of strategy.
	for _, score := range stats.Values {
		assert.LessOrEqual(t, score, float64(game.PerfectScore))
		assert.GreaterOrEqual(t, score, float64(-game.MaxBombs))
	}
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	a, _, err := New(testConfig(20, 4, 7)).Run(context.Background())
	require.NoError(t, err)

	// A different worker split must not change the outcome: trial seeds
	// depend only on the base seed and trial number.
	b, _, err := New(testConfig(20, 1, 7)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Trials, b.Trials)
	assert.InDelta(t, a.Mean(), b.Mean(), 1e-9)
	assert.InDelta(t, a.Median(), b.Median(), 1e-9)
	assert.Equal(t, a.Wins, b.Wins)
	assert.Equal(t, a.BombOuts, b.BombOuts)
}

func TestRunMoreWorkersThanTrials(t *testing.T) {
	stats, _, err := New(testConfig(3, 16, 1)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Trials)
}

func TestRunUsesInjectedClock(t *testing.T) {
	cfg := testConfig(2, 1, 3)
	cfg.Clock = quartz.NewMock(t)

	stats, elapsed, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Trials)
	// The mock clock never advances unless told to.
	assert.Equal(t, time.Duration(0), elapsed)
}

func TestRunDefaultsWorkers(t *testing.T) {
	s := New(testConfig(1, 0, 1))
	assert.Greater(t, s.config.Workers, 0)
}
