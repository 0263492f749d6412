package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-emg/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade of the given order
// with its -3 dB point at freq (Hz).
//
// Sections are ordered from lowest to highest Q. For odd orders the final
// section is first-order (B2=A2=0). The product of the sections equals the
// bilinear transform of the analog prototype prewarped at freq.
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if err := validateFrequency(freq, sampleRate); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		c, err := Lowpass(freq, butterworthQ(order, i), sampleRate)
		if err != nil {
			return nil, err
		}
		sections = append(sections, c)
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLowpass(freq, sampleRate))
	}

	for i := range sections {
		if !sections[i].Stable() {
			return nil, fmt.Errorf("%w: butterworth order %d at %v Hz, section %d", ErrUnstable, order, freq, i)
		}
	}

	return sections, nil
}

// butterworthQ returns the quality factor of the index-th conjugate pole
// pair of an order-n Butterworth prototype. index ranges over [0, order/2).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))
	return 1 / (2 * math.Sin(theta))
}
