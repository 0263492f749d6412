package emg

import (
	"errors"

	"github.com/cwbudde/algo-emg/dsp/filter/biquad"
	"github.com/cwbudde/algo-emg/dsp/filter/design"
	"github.com/cwbudde/algo-emg/dsp/spectrum"
)

// Errors returned by this package. Filter-design and filtering failures are
// the same values as in dsp/filter/design and dsp/filter/biquad, so
// errors.Is works against either import.
var (
	ErrInvalidSampleRate = design.ErrInvalidSampleRate
	ErrInvalidFrequency  = design.ErrInvalidFrequency
	ErrInvalidOrder      = design.ErrInvalidOrder
	ErrInvalidQuality    = design.ErrInvalidQuality
	ErrSignalTooShort    = biquad.ErrSignalTooShort
	ErrNoPower           = spectrum.ErrNoPower

	ErrEmptyReference   = errors.New("emg: MVC reference is empty")
	ErrInvalidReference = errors.New("emg: MVC reference maximum must be positive and finite")
)
