package battle

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// BatchResult aggregates the outcomes of repeated simulations of the same
// matchup.
type BatchResult struct {
	Battles    int
	FirstWins  int
	SecondWins int
	Draws      int
	Rounds     int // total rounds across all battles
}

// FirstWinRate returns the fraction of battles the first combatant won.
func (b *BatchResult) FirstWinRate() float64 {
	if b.Battles == 0 {
		return 0
	}
	return float64(b.FirstWins) / float64(b.Battles)
}

// AverageRounds returns the mean battle length in rounds.
func (b *BatchResult) AverageRounds() float64 {
	if b.Battles == 0 {
		return 0
	}
	return float64(b.Rounds) / float64(b.Battles)
}

// RunBatch estimates win rates by simulating the matchup n times
// concurrently. Each battle gets its own Simulator with a seed derived
// from the base seed, so the aggregate is reproducible regardless of
// scheduling. The provider is shared across battles and is only read.
func RunBatch(ctx context.Context, provider Provider, first, second string, n int, seed uint64) (*BatchResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", n)
	}

	// Fail fast on unknown names before spawning any battle.
	if _, err := provider.Species(ctx, first); err != nil {
		return nil, err
	}
	if _, err := provider.Species(ctx, second); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	batch := &BatchResult{Battles: n}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		g.Go(func() error {
			sim := NewSimulator(provider, NewSeededRand(seed+uint64(i)))
			result, err := sim.RunNames(ctx, first, second)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			switch result.Phase {
			case PhaseWonByFirst:
				batch.FirstWins++
			case PhaseWonBySecond:
				batch.SecondWins++
			default:
				batch.Draws++
			}
			batch.Rounds += len(result.Turns)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batch, nil
}
