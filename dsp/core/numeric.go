// Package core holds small numeric helpers shared by the filter, spectrum
// and EMG packages.
package core

import "math"

// PositiveFinite reports whether x is a usable rate, gain or quality
// factor: greater than zero and neither NaN nor Inf.
func PositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// BelowNyquist reports whether freq lies strictly between 0 and half of
// sampleRate. It is false for any NaN argument.
func BelowNyquist(freq, sampleRate float64) bool {
	return freq > 0 && freq < sampleRate/2
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// NextPowerOf2 returns the smallest power of two >= n, and 1 for n <= 1.
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
