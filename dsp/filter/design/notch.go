package design

import (
	"math"

	"github.com/cwbudde/algo-emg/dsp/filter/biquad"
)

// IIRNotch designs a second-order notch at freq (Hz) with quality factor q.
//
// The -3 dB bandwidth is freq/q. Zeros sit on the unit circle at ±freq,
// the pole pair just inside it:
//
//	b = g·[1, -2cos(w0), 1]
//	a = [1, -2g·cos(w0), 2g-1],  g = 1/(1 + tan(bw/2))
//
// This is the classic Mitra formulation also used by SciPy's iirnotch,
// and differs slightly in bandwidth from the RBJ cookbook notch.
func IIRNotch(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	if err := validateFrequency(freq, sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}
	if err := validateQuality(q); err != nil {
		return biquad.Coefficients{}, err
	}

	w0 := 2 * math.Pi * freq / sampleRate
	bw := w0 / q
	g := 1 / (1 + math.Tan(bw/2))
	cw := math.Cos(w0)

	return biquad.Coefficients{
		B0: g,
		B1: -2 * g * cw,
		B2: g,
		A1: -2 * g * cw,
		A2: 2*g - 1,
	}, nil
}
