// Package spltypes holds the shared type definitions used by the public API
// and the internal reordering kernels.
package spltypes

// Lane is the type constraint for packed complex samples. A lane carries one
// real/imaginary pair as a single value, so element assignment moves the pair
// atomically: uint32 for packed int16 pairs, uint64 for packed int32 pairs,
// and the native complex types.
type Lane interface {
	~uint32 | ~uint64 | ~complex64 | ~complex128
}

// Strategy controls how plans reorder a buffer into bit-reversed order.
type Strategy uint32

const (
	// StrategyAuto lets the planner pick based on buffer size and CPU
	// features.
	StrategyAuto Strategy = iota

	// StrategyIncremental walks the buffer with a Gold-Rader incremental
	// reversed counter. No allocation, best for small buffers.
	StrategyIncremental

	// StrategyTable swaps through a precomputed index table. One allocation
	// at plan time, best once the permutation outgrows cache.
	StrategyTable
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyIncremental:
		return "incremental"
	case StrategyTable:
		return "table"
	default:
		return "unknown"
	}
}
