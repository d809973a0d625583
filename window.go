package algospl

import "math"

// calcWithSymmetricIndices evaluates fn over the symmetric index set
// 1-n, 3-n, ..., n-1 (numpy's arange(1-n, n, 2)), which centers the window
// without a half-sample offset.
func calcWithSymmetricIndices(n int, fn func(k int) float64) []float64 {
	if n <= 0 {
		return nil
	}

	if n == 1 {
		return []float64{1.0}
	}

	w := make([]float64, 0, n)
	for k := 1 - n; k < n; k += 2 {
		w = append(w, fn(k))
	}

	return w
}

// Hanning returns the n-point Hann window:
// w(k) = 0.5 + 0.5*cos(pi*k/(n-1)) over the symmetric index set.
func Hanning(n int) []float64 {
	return calcWithSymmetricIndices(n, func(k int) float64 {
		return 0.5 + 0.5*math.Cos(math.Pi*float64(k)/float64(n-1))
	})
}

// Hamming returns the n-point Hamming window:
// w(k) = 0.54 + 0.46*cos(pi*k/(n-1)).
func Hamming(n int) []float64 {
	return calcWithSymmetricIndices(n, func(k int) float64 {
		return 0.54 + 0.46*math.Cos(math.Pi*float64(k)/float64(n-1))
	})
}

// Blackman returns the n-point Blackman window:
// w(k) = 0.42 + 0.5*cos(pi*k/(n-1)) + 0.08*cos(2*pi*k/(n-1)).
func Blackman(n int) []float64 {
	return calcWithSymmetricIndices(n, func(k int) float64 {
		x := math.Pi * float64(k) / float64(n-1)
		return 0.42 + 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
	})
}

// Bartlett returns the n-point triangular window:
// w(k) = 1 - |k|/(n-1).
func Bartlett(n int) []float64 {
	return calcWithSymmetricIndices(n, func(k int) float64 {
		if k <= 0 {
			return 1.0 + float64(k)/float64(n-1)
		}
		return 1.0 - float64(k)/float64(n-1)
	})
}

// ApplyWindow multiplies samples by window element-wise into dst. dst may
// alias samples for in-place use. Returns ErrLengthMismatch when the slice
// lengths disagree.
func ApplyWindow(dst, samples, window []float64) error {
	if len(dst) != len(samples) || len(samples) != len(window) {
		return ErrLengthMismatch
	}

	for i := range samples {
		dst[i] = samples[i] * window[i]
	}

	return nil
}
