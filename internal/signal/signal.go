// Package signal synthesizes multi-tone test signals for tests, benchmarks
// and examples.
package signal

import "math"

// Sine returns duration seconds of summed sine tones sampled at sampleRate.
// freqs and phases are paired by index and must have equal length.
func Sine(freqs, phases []float64, duration int, sampleRate float64) []float64 {
	return synth(freqs, phases, duration, sampleRate, math.Sin)
}

// Cosine is Sine with cosine tones.
func Cosine(freqs, phases []float64, duration int, sampleRate float64) []float64 {
	return synth(freqs, phases, duration, sampleRate, math.Cos)
}

func synth(freqs, phases []float64, duration int, sampleRate float64, osc func(float64) float64) []float64 {
	count := int(sampleRate) * duration
	wave := make([]float64, count)

	for n := range wave {
		t := float64(n) / sampleRate

		var value float64
		for i, freq := range freqs {
			value += osc(2*math.Pi*freq*t + phases[i])
		}

		wave[n] = value
	}

	return wave
}
