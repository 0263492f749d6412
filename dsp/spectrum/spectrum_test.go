package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-emg/dsp/window"
	"github.com/cwbudde/algo-emg/internal/testutil"
)

func TestPowerDensity_BinsAndFrequencies(t *testing.T) {
	d, err := PowerDensity(testutil.DeterministicSine(100, 1000, 1, 1000), 1000, window.TypeHann)
	require.NoError(t, err)

	// 1000 samples pad to 1024.
	require.Len(t, d.Freqs, 513)
	require.Len(t, d.Power, 513)
	assert.Zero(t, d.Freqs[0])
	assert.InDelta(t, 500, d.Freqs[512], 1e-12)
	for _, p := range d.Power {
		assert.GreaterOrEqual(t, p, 0.0)
	}
}

func TestPowerDensity_RectangularIntegratesToSinePower(t *testing.T) {
	const (
		n  = 1024
		fs = 1024.0
		a  = 3.0
	)
	x := testutil.DeterministicSine(100, fs, a, n)

	d, err := PowerDensity(x, fs, window.TypeRectangular)
	require.NoError(t, err)

	df := fs / n
	assert.InDelta(t, a*a/2, d.Total()*df, 1e-9)
}

func TestPowerDensity_DoesNotModifyInput(t *testing.T) {
	x := testutil.DeterministicNoise(3, 1, 300)
	orig := append([]float64(nil), x...)

	_, err := PowerDensity(x, 1000, window.TypeHann)
	require.NoError(t, err)
	assert.Equal(t, orig, x)
}

func TestPowerDensity_Errors(t *testing.T) {
	_, err := PowerDensity([]float64{1}, 1000, window.TypeHann)
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = PowerDensity([]float64{1, 2, 3}, 0, window.TypeHann)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
}

func TestCentroidAndMedian_SingleTone(t *testing.T) {
	d, err := PowerDensity(testutil.DeterministicSine(100, 1024, 1, 1024), 1024, window.TypeHann)
	require.NoError(t, err)

	c, err := d.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, 100, c, 0.5)

	m, err := d.MedianFrequency()
	require.NoError(t, err)
	assert.InDelta(t, 100, m, 1)
}

func TestCentroid_TwoEqualTones(t *testing.T) {
	a := testutil.DeterministicSine(50, 1024, 1, 1024)
	b := testutil.DeterministicSine(200, 1024, 1, 1024)
	for i := range a {
		a[i] += b[i]
	}

	d, err := PowerDensity(a, 1024, window.TypeHann)
	require.NoError(t, err)

	c, err := d.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, 125, c, 0.5)
}

func TestCentroid_NoPower(t *testing.T) {
	d, err := PowerDensity(make([]float64, 64), 1000, window.TypeHann)
	require.NoError(t, err)

	_, err = d.Centroid()
	assert.ErrorIs(t, err, ErrNoPower)
	_, err = d.MedianFrequency()
	assert.ErrorIs(t, err, ErrNoPower)
}

func TestGoertzel_BinAlignedSine(t *testing.T) {
	const n = 1000
	x := testutil.DeterministicSine(50, 1000, 2, n)

	p, err := AnalyzeBlock(x, 50, 1000)
	require.NoError(t, err)
	// |X[k]| = A*N/2
	assert.InDelta(t, math.Pow(2*n/2, 2), p, 1e-6*math.Pow(n, 2))

	off, err := AnalyzeBlock(x, 120, 1000)
	require.NoError(t, err)
	assert.Less(t, off, 1e-12*p)
}

func TestGoertzel_ResetAndValidation(t *testing.T) {
	g, err := NewGoertzel(60, 1000)
	require.NoError(t, err)
	assert.Equal(t, 60.0, g.Frequency())

	g.ProcessBlock([]float64{1, 2, 3})
	g.Reset()
	assert.Zero(t, g.Power())

	_, err = NewGoertzel(600, 1000)
	assert.Error(t, err)
	_, err = NewGoertzel(60, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
}

func TestPowerDensity_PeriodicHannConfinesBinCentredTone(t *testing.T) {
	// 100 Hz at 1024 Hz over 1024 samples is bin-centred; a periodic Hann
	// window spreads it over exactly three bins.
	d, err := PowerDensity(testutil.DeterministicSine(100, 1024, 1, 1024), 1024, window.TypeHann)
	require.NoError(t, err)

	peak := d.Power[100]
	assert.InDelta(t, peak/4, d.Power[99], peak*1e-9)
	assert.InDelta(t, peak/4, d.Power[101], peak*1e-9)
	for k, p := range d.Power {
		if k < 99 || k > 101 {
			assert.Less(t, p, peak*1e-12, "bin %d", k)
		}
	}
}
