package design

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-emg/dsp/core"
)

var (
	ErrInvalidSampleRate = errors.New("design: sample rate must be positive and finite")
	ErrInvalidFrequency  = errors.New("design: frequency must lie strictly between 0 and Nyquist")
	ErrInvalidOrder      = errors.New("design: filter order must be >= 1")
	ErrInvalidQuality    = errors.New("design: quality factor must be positive and finite")
	ErrUnstable          = errors.New("design: resulting filter is unstable")
)

func validateSampleRate(sampleRate float64) error {
	if !core.PositiveFinite(sampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

func validateFrequency(freq, sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}
	if !core.BelowNyquist(freq, sampleRate) {
		return fmt.Errorf("%w: %v Hz at %v Hz sample rate", ErrInvalidFrequency, freq, sampleRate)
	}
	return nil
}

func validateQuality(q float64) error {
	if !core.PositiveFinite(q) {
		return fmt.Errorf("%w: %v", ErrInvalidQuality, q)
	}
	return nil
}
