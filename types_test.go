package algospl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	algospl "github.com/cwbudde/algo-spl"
)

func TestPackComplexInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		re, im int16
	}{
		{"zero", 0, 0},
		{"positive", 1234, 5678},
		{"negative re", -1234, 5678},
		{"negative im", 1234, -5678},
		{"extremes", -32768, 32767},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lane := algospl.PackComplexInt16(tt.re, tt.im)
			re, im := algospl.UnpackComplexInt16(lane)

			assert.Equal(t, tt.re, re)
			assert.Equal(t, tt.im, im)
		})
	}
}

func TestPackComplexInt16Layout(t *testing.T) {
	t.Parallel()
	// Real component occupies the low half of the lane.
	assert.Equal(t, uint32(0x0001), algospl.PackComplexInt16(1, 0))
	assert.Equal(t, uint32(0x0001_0000), algospl.PackComplexInt16(0, 1))
}

func TestPackComplexInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		re, im int32
	}{
		{0, 0},
		{1 << 20, -(1 << 21)},
		{-2147483648, 2147483647},
	}

	for _, tt := range tests {
		lane := algospl.PackComplexInt32(tt.re, tt.im)
		re, im := algospl.UnpackComplexInt32(lane)

		assert.Equal(t, tt.re, re)
		assert.Equal(t, tt.im, im)
	}

	assert.Equal(t, uint64(0x0000_0001), algospl.PackComplexInt32(1, 0))
	assert.Equal(t, uint64(0x0000_0001_0000_0000), algospl.PackComplexInt32(0, 1))
}
