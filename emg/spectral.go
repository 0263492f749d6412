package emg

import (
	"fmt"

	"github.com/cwbudde/algo-emg/dsp/core"
	"github.com/cwbudde/algo-emg/dsp/spectrum"
	timestats "github.com/cwbudde/algo-emg/stats/time"
)

// MeanFrequency returns the power-weighted mean frequency (MNF) of a
// windowed periodogram of signal. A falling MNF across successive
// contractions is the classic indicator of muscle fatigue.
//
// The window is Hann unless WithWindow says otherwise; WithSampleRate
// does not apply, the rate is given explicitly.
func MeanFrequency(signal []float64, sampleRate float64, opts ...Option) (float64, error) {
	d, err := density(signal, sampleRate, newConfig(opts))
	if err != nil {
		return 0, err
	}

	return d.Centroid()
}

// MedianFrequency returns the frequency (MDF) below which half of the
// spectral power of signal lies. Options are as for MeanFrequency.
func MedianFrequency(signal []float64, sampleRate float64, opts ...Option) (float64, error) {
	d, err := density(signal, sampleRate, newConfig(opts))
	if err != nil {
		return 0, err
	}

	return d.MedianFrequency()
}

func density(signal []float64, sampleRate float64, cfg config) (spectrum.Density, error) {
	if !core.PositiveFinite(sampleRate) {
		return spectrum.Density{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if len(signal) < 2 {
		return spectrum.Density{}, fmt.Errorf("%w: spectral features need at least 2 samples, got %d",
			ErrSignalTooShort, len(signal))
	}

	cfg.logger.Debug().
		Str("stage", "spectrum").
		Stringer("window", cfg.window).
		Int("samples", len(signal)).
		Msg("estimating power spectrum")

	return spectrum.PowerDensity(signal, sampleRate, cfg.window)
}

// LineInterference reports how much of the energy of signal sits at the
// mains frequency lineHz, in dB relative to the total energy after mean
// removal. A pure sinusoid at lineHz that completes an integer number of
// cycles gives 0 dB; broadband EMG without mains pickup gives strongly
// negative values. A signal with no component at lineHz at all gives -Inf.
func LineInterference(signal []float64, lineHz, sampleRate float64) (float64, error) {
	if !core.PositiveFinite(sampleRate) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if !core.BelowNyquist(lineHz, sampleRate) {
		return 0, fmt.Errorf("%w: %v Hz at %v Hz sample rate", ErrInvalidFrequency, lineHz, sampleRate)
	}

	mean := timestats.Mean(signal)
	centered := make([]float64, len(signal))
	energy := 0.0
	for i, x := range signal {
		centered[i] = x - mean
		energy += centered[i] * centered[i]
	}
	if energy == 0 {
		return 0, ErrNoPower
	}

	power, err := spectrum.AnalyzeBlock(centered, lineHz, sampleRate)
	if err != nil {
		return 0, err
	}

	return core.LinearPowerToDB(2 * power / (float64(len(signal)) * energy)), nil
}
