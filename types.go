package algospl

import "github.com/cwbudde/algo-spl/internal/spltypes"

// Lane is a type constraint for the packed complex sample types the permuter
// moves as atomic units. The canonical definition is in internal/spltypes.
type Lane = spltypes.Lane

// Strategy selects how a Plan reorders its buffer.
// The canonical definition is in internal/spltypes.
type Strategy = spltypes.Strategy

// Reordering strategies accepted by WithStrategy.
const (
	StrategyAuto        = spltypes.StrategyAuto
	StrategyIncremental = spltypes.StrategyIncremental
	StrategyTable       = spltypes.StrategyTable
)

// PackComplexInt16 packs a 16-bit real/imaginary pair into a single uint32
// lane, real component in the low half. This is the layout fixed-point FFT
// pipelines use for interleaved int16 sample pairs.
func PackComplexInt16(re, im int16) uint32 {
	return uint32(uint16(re)) | uint32(uint16(im))<<16
}

// UnpackComplexInt16 splits a packed uint32 lane back into its real and
// imaginary components.
func UnpackComplexInt16(lane uint32) (re, im int16) {
	return int16(uint16(lane)), int16(uint16(lane >> 16))
}

// PackComplexInt32 packs a 32-bit real/imaginary pair into a single uint64
// lane, real component in the low half.
func PackComplexInt32(re, im int32) uint64 {
	return uint64(uint32(re)) | uint64(uint32(im))<<32
}

// UnpackComplexInt32 splits a packed uint64 lane back into its real and
// imaginary components.
func UnpackComplexInt32(lane uint64) (re, im int32) {
	return int32(uint32(lane)), int32(uint32(lane >> 32))
}
