// Package algospl provides the sample-conditioning steps that run ahead of a
// decimation-in-time FFT: in-place bit-reversal reordering of packed complex
// sample buffers, window functions, and packing helpers for fixed-point
// complex lanes.
//
// The reordering core maintains the bit-reversed loop counter incrementally
// (Gold-Rader), so a full permutation costs amortized O(1) index work per
// sample and performs no allocation. Each buffer element is one complex
// sample and moves as an atomic unit, whether it is a packed integer lane
// (see PackComplexInt16) or a native complex64/complex128 value.
//
// Validation lives at the edges: Plan construction and BitReverse check their
// inputs, while Plan.Permute and the package-level Permute are unchecked hot
// paths whose preconditions the caller guarantees.
package algospl
