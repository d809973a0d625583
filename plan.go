package algospl

import (
	"github.com/cwbudde/algo-spl/internal/cpu"
	m "github.com/cwbudde/algo-spl/internal/math"
	"github.com/cwbudde/algo-spl/internal/spl"
)

// Crossover stage counts above which the precomputed-table walk beats the
// incremental counter. Wide vector copies shift the balance toward the table
// earlier.
const (
	tableCrossoverStages     = 14
	tableCrossoverStagesWide = 12
)

// maxStages caps validated plans at 2^30 samples; beyond that the index
// space no longer fits comfortably in 32-bit arithmetic.
const maxStages = 30

// Plan reorders fixed-size buffers into bit-reversed order.
//
// All validation and strategy selection happens at construction; Permute is
// the unchecked hot path. A Plan is safe for concurrent use on disjoint
// buffers (it is read-only after construction), but a single buffer must not
// be reordered from multiple goroutines at once.
type Plan[T Lane] struct {
	stages   int
	n        int
	strategy Strategy
	bitrev   []int // non-nil only for StrategyTable
}

// Option configures plan construction.
type Option func(*planConfig)

type planConfig struct {
	strategy Strategy
}

// WithStrategy forces a reordering strategy instead of the automatic choice.
func WithStrategy(s Strategy) Option {
	return func(cfg *planConfig) { cfg.strategy = s }
}

// NewPlan creates a reordering plan for buffers of 1<<stages packed complex
// samples. Returns ErrInvalidStages unless 0 <= stages <= 30.
//
// Example:
//
//	plan, err := algospl.NewPlan[complex128](10) // 1024-point buffers
//	if err != nil {
//	    return err
//	}
//	plan.Permute(buf)
func NewPlan[T Lane](stages int, opts ...Option) (*Plan[T], error) {
	if stages < 0 || stages > maxStages {
		return nil, ErrInvalidStages
	}

	cfg := planConfig{strategy: StrategyAuto}
	for _, opt := range opts {
		opt(&cfg)
	}

	strategy := cfg.strategy
	if strategy == StrategyAuto {
		strategy = resolveStrategy(stages, cpu.DetectFeatures())
	}

	p := &Plan[T]{
		stages:   stages,
		n:        1 << uint(stages),
		strategy: strategy,
	}

	if strategy == StrategyTable {
		p.bitrev = m.ComputeBitReversalIndices(p.n)
	}

	return p, nil
}

func resolveStrategy(stages int, features cpu.Features) Strategy {
	crossover := tableCrossoverStages
	if features.HasWideVectors() {
		crossover = tableCrossoverStagesWide
	}

	if stages >= crossover {
		return StrategyTable
	}

	return StrategyIncremental
}

// Stages returns log2 of the buffer size the plan reorders.
func (p *Plan[T]) Stages() int {
	return p.stages
}

// Len returns the buffer size the plan reorders.
func (p *Plan[T]) Len() int {
	return p.n
}

// Strategy returns the resolved reordering strategy.
func (p *Plan[T]) Strategy() Strategy {
	return p.strategy
}

// Permute reorders data in place without validation.
// Caller guarantees len(data) >= p.Len().
func (p *Plan[T]) Permute(data []T) {
	if p.bitrev != nil {
		spl.PermuteTable(data, p.bitrev)
		return
	}

	spl.Permute(data, p.stages)
}

// PermuteChecked verifies the buffer before reordering. Returns ErrNilSlice
// for a nil buffer and ErrLengthMismatch when len(data) != p.Len().
func (p *Plan[T]) PermuteChecked(data []T) error {
	if data == nil {
		return ErrNilSlice
	}

	if len(data) != p.n {
		return ErrLengthMismatch
	}

	p.Permute(data)

	return nil
}
