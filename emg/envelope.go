package emg

import "fmt"

// RawToEnvelope turns a raw recording into its linear envelope: the signal
// is rectified around its mean and smoothed with the zero-phase
// Butterworth low-pass of LowPass at cutoffHz (typically 3 to 10 Hz).
//
// With WithReference the MVC recording goes through the same rectifier
// and filter, and the envelope is returned in percent of the maximum of
// the reference envelope. Without it the envelope keeps signal units.
func RawToEnvelope(signal []float64, cutoffHz float64, opts ...Option) ([]float64, error) {
	cfg := newConfig(opts)
	if cfg.hasReference && len(cfg.reference) == 0 {
		return nil, ErrEmptyReference
	}

	chain, err := cfg.lowpass(cutoffHz)
	if err != nil {
		return nil, err
	}

	env, err := cfg.filtfilt(chain, Rectify(signal))
	if err != nil {
		return nil, err
	}

	if !cfg.hasReference {
		return env, nil
	}

	ref, err := cfg.filtfilt(chain, Rectify(cfg.reference))
	if err != nil {
		return nil, fmt.Errorf("emg: reference: %w", err)
	}

	out, err := Normalize(env, ref)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug().
		Int("reference_samples", len(cfg.reference)).
		Msg("normalized envelope to reference")

	return out, nil
}
