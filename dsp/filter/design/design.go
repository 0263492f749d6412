package design

import (
	"math"

	"github.com/cwbudde/algo-emg/dsp/filter/biquad"
)

// Lowpass designs an RBJ lowpass biquad at freq (Hz) with quality factor q.
//
// The section is the bilinear transform of 1/(s^2 + s/q + 1) prewarped so
// that the analog and digital responses agree exactly at freq.
func Lowpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	if err := validateFrequency(freq, sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}
	if err := validateQuality(q); err != nil {
		return biquad.Coefficients{}, err
	}

	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2), nil
}

// firstOrderLowpass designs the bilinear-transformed one-pole lowpass
// 1/(s+1), prewarped to freq. Used as the tail section of odd orders.
func firstOrderLowpass(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
