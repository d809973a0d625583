package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spl/internal/signal"
)

func TestBiquadPassthrough(t *testing.T) {
	t.Parallel()

	f := NewBiquad(1, 0, 0, 0, 0)
	x := []float64{1, -2, 3.5, 0, 7}

	assert.Equal(t, x, f.Process(x))
}

func TestBiquadImpulseResponse(t *testing.T) {
	t.Parallel()

	f := NewBiquad(1, 0.5, 0.25, 0.3, 0.2)
	got := f.Process([]float64{1, 0, 0, 0, 0})

	expect := []float64{1, 0.2, -0.01, -0.037, 0.0131}
	require.Len(t, got, len(expect))
	assert.InDeltaSlice(t, expect, got, 1e-12)
}

func TestBiquadStatePersistsAcrossChunks(t *testing.T) {
	t.Parallel()

	x := signal.Sine([]float64{5, 13}, []float64{0, 0.7}, 1, 64)

	whole := NewBiquad(0.2, 0.4, 0.2, -0.5, 0.1)
	want := whole.Process(x)

	chunked := NewBiquad(0.2, 0.4, 0.2, -0.5, 0.1)
	got := append(chunked.Process(x[:20]), chunked.Process(x[20:])...)

	require.Len(t, got, len(want))
	assert.InDeltaSlice(t, want, got, 1e-12)
}

func TestBiquadReset(t *testing.T) {
	t.Parallel()

	f := NewBiquad(1, 0.5, 0.25, 0.3, 0.2)
	first := f.Process([]float64{1, 2, 3, 4})

	f.Reset()
	second := f.Process([]float64{1, 2, 3, 4})

	assert.Equal(t, first, second)
}

func TestBiquadString(t *testing.T) {
	t.Parallel()

	f := NewBiquad(1, 0.5, 0.25, 0.3, 0.2)
	assert.Equal(t, "Biquad{b: (1, 0.5, 0.25), a: (0.3, 0.2)}", f.String())
}
