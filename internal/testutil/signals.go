package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Burst describes one contraction in a synthetic EMG recording.
type Burst struct {
	Start, Stop int     // sample range [Start, Stop)
	Amplitude   float64 // peak of the raised-cosine activation profile
}

// SyntheticEMG builds a reproducible surface-EMG-like recording: zero-mean
// noise whose amplitude follows a raised-cosine profile inside each burst,
// plus a small resting noise floor and an optional DC offset.
func SyntheticEMG(seed int64, length int, offset, floor float64, bursts ...Burst) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = offset + floor*rng.NormFloat64()
	}

	for _, b := range bursts {
		span := b.Stop - b.Start
		if span <= 0 {
			continue
		}
		for i := b.Start; i < b.Stop && i < length; i++ {
			if i < 0 {
				continue
			}
			phase := float64(i-b.Start) / float64(span)
			env := b.Amplitude * 0.5 * (1 - math.Cos(2*math.Pi*phase))
			out[i] += env * rng.NormFloat64()
		}
	}

	return out
}

// Add returns the element-wise sum of equal-length signals.
func Add(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}
