// Package time computes time-domain amplitude statistics of a recording.
package time

import "math"

// Stats holds time-domain signal statistics.
type Stats struct {
	Length         int
	Mean           float64 // DC offset
	RMS            float64
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	AbsSum         float64 // sum of |x|
	MAV            float64 // mean absolute value
	WaveformLength float64 // sum of |x[i] - x[i-1]|
	Variance       float64 // population variance
	ZeroCrossings  int
}

// Calculate computes all statistics in a single pass. The variance uses
// Welford's update for numerical stability.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		mean, m2      float64
		sumSq, absSum float64
		wl            float64
		maxVal        = signal[0]
		maxPos        int
		minVal        = signal[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x
		absSum += math.Abs(x)

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 {
			wl += math.Abs(x - signal[i-1])
			if signal[i-1]*x < 0 {
				zeroCrossings++
			}
		}
	}

	nf := float64(n)

	return Stats{
		Length:         n,
		Mean:           mean,
		RMS:            math.Sqrt(sumSq / nf),
		Max:            maxVal,
		MaxPos:         maxPos,
		Min:            minVal,
		MinPos:         minPos,
		Peak:           math.Max(math.Abs(maxVal), math.Abs(minVal)),
		AbsSum:         absSum,
		MAV:            absSum / nf,
		WaveformLength: wl,
		Variance:       m2 / nf,
		ZeroCrossings:  zeroCrossings,
	}
}

// Mean returns the arithmetic mean of the signal, 0 for an empty slice.
// Kahan summation keeps long recordings with a large offset accurate.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Max returns the largest value and its first index.
// Returns (NaN, -1) for an empty slice.
func Max(signal []float64) (float64, int) {
	if len(signal) == 0 {
		return math.NaN(), -1
	}

	best, pos := signal[0], 0
	for i, x := range signal[1:] {
		if x > best {
			best, pos = x, i+1
		}
	}

	return best, pos
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}
