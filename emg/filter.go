package emg

import (
	"fmt"

	"github.com/cwbudde/algo-emg/dsp/filter/biquad"
	"github.com/cwbudde/algo-emg/dsp/filter/design"
)

// LowPass applies a Butterworth low-pass at cutoffHz forward and backward
// over signal. The result has no phase shift and twice the single-pass
// attenuation; edges are handled by odd reflection and steady-state
// initial conditions, so a constant input is returned unchanged.
//
// Options: WithSampleRate (default 1000 Hz), WithOrder (default 2).
// The signal must be longer than 3*(order+1) samples.
func LowPass(signal []float64, cutoffHz float64, opts ...Option) ([]float64, error) {
	cfg := newConfig(opts)

	chain, err := cfg.lowpass(cutoffHz)
	if err != nil {
		return nil, err
	}

	return cfg.filtfilt(chain, signal)
}

// Notch removes a narrow band around notchHz, typically 50 or 60 Hz mains
// interference, with a second-order IIR notch of quality WithQuality
// (default 30). The filter runs causally from zero state, so the output
// carries the notch's phase response and a short start-up transient.
//
// The sample rate is given explicitly; WithSampleRate does not apply.
func Notch(signal []float64, notchHz, sampleRate float64, opts ...Option) ([]float64, error) {
	cfg := newConfig(opts)

	c, err := design.IIRNotch(notchHz, cfg.quality, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("emg: notch design: %w", err)
	}

	cfg.logger.Debug().
		Str("stage", "notch").
		Float64("notch_hz", notchHz).
		Float64("quality", cfg.quality).
		Float64("sample_rate", sampleRate).
		Int("samples", len(signal)).
		Msg("designed iir notch")

	return biquad.NewChain([]biquad.Coefficients{c}).Filter(signal), nil
}

func (c config) lowpass(cutoffHz float64) (*biquad.Chain, error) {
	coeffs, err := design.ButterworthLP(cutoffHz, c.order, c.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("emg: low-pass design: %w", err)
	}

	c.logger.Debug().
		Str("stage", "lowpass").
		Float64("cutoff_hz", cutoffHz).
		Int("order", c.order).
		Float64("sample_rate", c.sampleRate).
		Int("sections", len(coeffs)).
		Msg("designed butterworth low-pass")

	return biquad.NewChain(coeffs), nil
}

func (c config) filtfilt(chain *biquad.Chain, signal []float64) ([]float64, error) {
	out, err := chain.FiltFilt(signal)
	if err != nil {
		return nil, fmt.Errorf("emg: zero-phase filter: %w", err)
	}

	c.logger.Debug().
		Int("samples", len(signal)).
		Int("pad_len", chain.DefaultPadLen()).
		Msg("applied zero-phase filter")

	return out, nil
}
