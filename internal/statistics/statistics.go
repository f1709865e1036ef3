// Package statistics aggregates per-trial scores from batch simulations.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/hanabi/internal/game"
)

// TrialResult represents the outcome of a single simulated game
type TrialResult struct {
	Score     int
	Seed      int64 // RNG seed for this trial (for replay)
	Turns     int
	Bombs     int
	BombedOut bool // Game ended by hitting the bomb limit
	Win       bool // Perfect score
}

// Statistics tracks aggregate simulation results. It is not safe for
// concurrent use; parallel workers should each accumulate a local
// Statistics and Merge them at the join point.
type Statistics struct {
	Trials int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // All scores, for median/percentile calculation

	Wins     int // Perfect-score games
	BombOuts int // Games ended by the bomb limit
	Turns    int // Total turns across all trials
}

// Add incorporates a trial result
func (s *Statistics) Add(result TrialResult) {
	score := float64(result.Score)
	s.Trials++
	s.Sum += score
	s.Sum2 += score * score
	s.Values = append(s.Values, score)
	s.Turns += result.Turns

	if result.Win {
		s.Wins++
	}
	if result.BombedOut {
		s.BombOuts++
	}
}

// Merge folds another Statistics into this one. Used as the reduction
// step when trials run on parallel workers.
func (s *Statistics) Merge(other *Statistics) {
	s.Trials += other.Trials
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.BombOuts += other.BombOuts
	s.Turns += other.Turns
}

// Mean returns the arithmetic mean score per trial
func (s *Statistics) Mean() float64 {
	if s.Trials == 0 {
		return 0
	}
	return s.Sum / float64(s.Trials)
}

// Variance returns the sample variance of all scores
func (s *Statistics) Variance() float64 {
	if s.Trials < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Trials)*mean*mean) / float64(s.Trials-1)
}

// StdDev returns the sample standard deviation of all scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Trials == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Trials))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sortedValues()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sortedValues()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the fraction of trials that reached a perfect score
func (s *Statistics) WinRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Trials)
}

// MeanTurns returns the average number of turns per trial
func (s *Statistics) MeanTurns() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Turns) / float64(s.Trials)
}

func (s *Statistics) sortedValues() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Trials <= 0 {
		return fmt.Errorf("invalid trial count: %d", s.Trials)
	}

	if len(s.Values) != s.Trials {
		return fmt.Errorf("values length (%d) does not match trial count (%d)",
			len(s.Values), s.Trials)
	}

	if s.Wins > s.Trials {
		return fmt.Errorf("wins (%d) exceed trials (%d)", s.Wins, s.Trials)
	}

	if s.BombOuts > s.Trials {
		return fmt.Errorf("bomb-outs (%d) exceed trials (%d)", s.BombOuts, s.Trials)
	}

	for _, v := range s.Values {
		if v > game.PerfectScore {
			return fmt.Errorf("score %v exceeds the maximum attainable %d", v, game.PerfectScore)
		}
	}

	return nil
}
