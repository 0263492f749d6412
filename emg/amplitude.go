package emg

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-emg/dsp/core"
	timestats "github.com/cwbudde/algo-emg/stats/time"
)

// Rectify returns |signal[i] - mean(signal)|, the full-wave rectified
// recording with its DC offset removed first. An empty input yields an
// empty result.
func Rectify(signal []float64) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	mean := timestats.Mean(signal)
	for i, x := range signal {
		out[i] = math.Abs(x - mean)
	}

	return out
}

// Normalize expresses signal in percent of the maximum of reference,
// usually an MVC trial: signal[i] / max(reference) * 100. A reference
// holding NaN or Inf anywhere is rejected with ErrInvalidReference.
func Normalize(signal, reference []float64) ([]float64, error) {
	if len(reference) == 0 {
		return nil, ErrEmptyReference
	}

	for i, v := range reference {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: sample %d is %v", ErrInvalidReference, i, v)
		}
	}

	peak, _ := timestats.Max(reference)

	return NormalizeToValue(signal, peak)
}

// NormalizeToValue expresses signal in percent of a known MVC amplitude.
func NormalizeToValue(signal []float64, mvc float64) ([]float64, error) {
	if !core.PositiveFinite(mvc) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, mvc)
	}

	out := make([]float64, len(signal))
	if len(signal) > 0 {
		vecmath.ScaleBlock(out, signal, 100/mvc)
	}

	return out, nil
}

// AmplitudeStats summarizes the amplitude of a recording with the usual
// time-domain EMG features.
type AmplitudeStats struct {
	Mean           float64 // DC offset
	MAV            float64 // mean absolute value
	RMS            float64
	IEMG           float64 // integrated EMG, sum(|x|)/fs, in signal units times seconds
	Peak           float64
	WaveformLength float64 // cumulative absolute sample-to-sample change
	ZeroCrossings  int
}

// Amplitude computes time-domain features of signal. The sample rate
// (WithSampleRate) only affects IEMG. A non-positive rate leaves IEMG at 0.
func Amplitude(signal []float64, opts ...Option) AmplitudeStats {
	cfg := newConfig(opts)
	s := timestats.Calculate(signal)

	a := AmplitudeStats{
		Mean:           s.Mean,
		MAV:            s.MAV,
		RMS:            s.RMS,
		Peak:           s.Peak,
		WaveformLength: s.WaveformLength,
		ZeroCrossings:  s.ZeroCrossings,
	}
	if core.PositiveFinite(cfg.sampleRate) {
		a.IEMG = s.AbsSum / cfg.sampleRate
	}

	return a
}
