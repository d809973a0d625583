// Package spl implements the in-place sample reordering kernels that feed a
// decimation-in-time FFT butterfly stage.
package spl

import "github.com/cwbudde/algo-spl/internal/spltypes"

// Lane is a type alias for the packed complex sample constraint.
// The canonical definition is in internal/spltypes.
type Lane = spltypes.Lane

// Permute reorders data into bit-reversed index order in place. The buffer
// holds 1<<stages packed complex samples; each element is one sample and
// moves as a unit.
//
// The reversed counterpart of the loop index is carried incrementally
// (Gold-Rader): each step finds the highest zero bit of the reversed counter
// within the stages-bit space, clears everything above it and sets it, which
// is "add 1" in bit-reversed order. Pairs are swapped only when
// reversed > index, so every pair is exchanged exactly once and fixed points
// are left untouched; the whole permutation is an involution.
//
// Caller guarantees stages >= 0 and len(data) >= 1<<stages. No validation,
// no allocation.
func Permute[T Lane](data []T, stages int) {
	length := 1 << uint(stages)
	max := length - 1
	reversed := 0

	for index := 1; index <= max; index++ {
		bit := length
		for {
			bit >>= 1
			if bit <= max-reversed {
				break
			}
		}

		reversed = (reversed & (bit - 1)) + bit

		if reversed <= index {
			continue
		}

		data[index], data[reversed] = data[reversed], data[index]
	}
}

// PermuteTable applies the same reordering through a precomputed index
// table, as produced by math.ComputeBitReversalIndices(len(data)). The
// reversed > index guard mirrors Permute, so the result and the
// exchanged-exactly-once property are identical.
func PermuteTable[T Lane](data []T, bitrev []int) {
	for index, reversed := range bitrev {
		if reversed > index {
			data[index], data[reversed] = data[reversed], data[index]
		}
	}
}
