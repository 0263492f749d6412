package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-emg/dsp/core"
	"github.com/cwbudde/algo-emg/dsp/window"
)

var (
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive and finite")
	ErrTooShort          = errors.New("spectrum: at least two samples are required")
	ErrNoPower           = errors.New("spectrum: signal has no spectral power")
)

// Density is a one-sided power spectral density.
// Freqs[k] is the centre frequency of Power[k] in Hz.
type Density struct {
	Freqs []float64
	Power []float64
}

// PowerDensity estimates the one-sided power spectral density of x
// (units²/Hz) from a single windowed periodogram. The window is used in
// its periodic form. x is zero-padded to the next power of two; x itself
// is not modified.
func PowerDensity(x []float64, sampleRate float64, win window.Type) (Density, error) {
	if !core.PositiveFinite(sampleRate) {
		return Density{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	n := len(x)
	if n < 2 {
		return Density{}, fmt.Errorf("%w: got %d", ErrTooShort, n)
	}

	buf := make([]float64, n)
	copy(buf, x)

	coeffs := window.Apply(win, buf, window.WithPeriodic())

	scale := sampleRate * window.EnergyGain(coeffs)
	if scale == 0 {
		return Density{}, ErrNoPower
	}

	fftSize := core.NextPowerOf2(n)
	in := make([]complex128, fftSize)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Density{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Density{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	d := Density{
		Freqs: make([]float64, bins),
		Power: make([]float64, bins),
	}
	vecmath.Power(d.Power, re, im)

	for k := range bins {
		d.Freqs[k] = float64(k) * sampleRate / float64(fftSize)

		p := d.Power[k] / scale
		if k != 0 && k != bins-1 {
			p *= 2
		}
		d.Power[k] = p
	}

	return d, nil
}

// Total returns the summed power over all bins.
func (d Density) Total() float64 {
	sum := 0.0
	for _, p := range d.Power {
		sum += p
	}
	return sum
}

// Centroid returns the power-weighted mean frequency sum(f·P)/sum(P).
func (d Density) Centroid() (float64, error) {
	total := d.Total()
	if total <= 0 {
		return 0, ErrNoPower
	}

	num := 0.0
	for k, p := range d.Power {
		num += d.Freqs[k] * p
	}

	return num / total, nil
}

// MedianFrequency returns the frequency of the first bin at which the
// cumulative power reaches half the total.
func (d Density) MedianFrequency() (float64, error) {
	total := d.Total()
	if total <= 0 {
		return 0, ErrNoPower
	}

	half := total / 2
	acc := 0.0
	for k, p := range d.Power {
		acc += p
		if acc >= half {
			return d.Freqs[k], nil
		}
	}

	return d.Freqs[len(d.Freqs)-1], nil
}
