// Package filter provides time-domain filters for conditioning samples ahead
// of spectral analysis.
package filter

import "fmt"

// Biquad is a direct-form-I second-order IIR section:
//
//	y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] - a1*y[n-1] - a2*y[n-2]
//
//	        b0 + b1*z^-1 + b2*z^-2
//	H(z) = ------------------------
//	        1  + a1*z^-1 + a2*z^-2
//
// Filter state persists across Process calls, so a long signal can be fed in
// chunks. Not safe for concurrent use.
type Biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 float64
	y1, y2 float64
}

// NewBiquad creates a biquad section with the given numerator (b) and
// denominator (a) coefficients; the leading denominator coefficient is
// implicitly 1.
func NewBiquad(b0, b1, b2, a1, a2 float64) *Biquad {
	return &Biquad{b0: b0, b1: b1, b2: b2, a1: a1, a2: a2}
}

// Process filters x and returns the output signal, carrying the delay-line
// state over from any previous call.
func (f *Biquad) Process(x []float64) []float64 {
	y := make([]float64, 0, len(x))

	for _, x0 := range x {
		y0 := f.b0*x0 + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
		f.x2, f.x1 = f.x1, x0
		f.y2, f.y1 = f.y1, y0
		y = append(y, y0)
	}

	return y
}

// Reset clears the carried delay-line state.
func (f *Biquad) Reset() {
	f.x1, f.x2, f.y1, f.y2 = 0, 0, 0, 0
}

// String returns the filter coefficients in a readable form.
func (f *Biquad) String() string {
	return fmt.Sprintf("Biquad{b: (%g, %g, %g), a: (%g, %g)}", f.b0, f.b1, f.b2, f.a1, f.a2)
}
