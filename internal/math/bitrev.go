// Package math provides the index arithmetic behind the bit-reversal
// permutation.
package math

import "math/bits"

// ReverseBits reverses the lower 'nbits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
// Non-positive nbits yields 0.
func ReverseBits(x, nbits int) int {
	if nbits <= 0 {
		return 0
	}

	return int(bits.Reverse32(uint32(x)) >> (32 - uint(nbits)))
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	if n <= 0 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}

// IsPowerOf2 reports whether n is a positive power of 2.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ComputeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 FFT. Returns nil for n <= 0.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	nbits := Log2(n)

	for i := 0; i < n; i++ {
		bitrev[i] = ReverseBits(i, nbits)
	}

	return bitrev
}
