package algospl

import (
	m "github.com/cwbudde/algo-spl/internal/math"
	"github.com/cwbudde/algo-spl/internal/spl"
)

// Permute reorders data into bit-reversed index order in place: the sample
// at index i ends up at the index whose stages-bit binary representation is
// the reversal of i's. Applying it twice restores the original order.
//
// This is the unchecked hot path. Caller guarantees stages >= 0 and
// len(data) >= 1<<stages; violating either is undefined behavior. Use
// BitReverse or a Plan when validation is wanted.
func Permute[T Lane](data []T, stages int) {
	spl.Permute(data, stages)
}

// BitReverse reorders data in place, deriving the stage count from the
// buffer length. Returns ErrNilSlice for an empty buffer and
// ErrInvalidLength when the length is not a power of 2.
func BitReverse[T Lane](data []T) error {
	if len(data) == 0 {
		return ErrNilSlice
	}

	if !m.IsPowerOf2(len(data)) {
		return ErrInvalidLength
	}

	spl.Permute(data, m.Log2(len(data)))

	return nil
}
