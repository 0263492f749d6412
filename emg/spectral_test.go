package emg

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-emg/dsp/window"
	"github.com/cwbudde/algo-emg/internal/testutil"
)

func TestMeanAndMedianFrequency_Tone(t *testing.T) {
	x := testutil.DeterministicSine(100, 1024, 1, 1024)

	mnf, err := MeanFrequency(x, 1024)
	require.NoError(t, err)
	assert.InDelta(t, 100, mnf, 0.5)

	mdf, err := MedianFrequency(x, 1024)
	require.NoError(t, err)
	assert.InDelta(t, 100, mdf, 1)
}

func TestMeanFrequency_WindowOption(t *testing.T) {
	x := testutil.DeterministicSine(100, 1024, 1, 1024)

	for _, w := range []window.Type{window.TypeRectangular, window.TypeHamming, window.TypeBlackman} {
		mnf, err := MeanFrequency(x, 1024, WithWindow(w))
		require.NoError(t, err, w.String())
		assert.InDelta(t, 100, mnf, 0.5, w.String())

		mdf, err := MedianFrequency(x, 1024, WithWindow(w))
		require.NoError(t, err, w.String())
		assert.InDelta(t, 100, mdf, 1, w.String())
	}

	var buf bytes.Buffer
	_, err := MeanFrequency(x, 1024, WithWindow(window.TypeBlackman), WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"window":"blackman"`)
}

func TestMeanFrequency_DropsAfterLowPass(t *testing.T) {
	raw := testutil.DeterministicNoise(21, 1, 4096)
	smooth, err := LowPass(raw, 50)
	require.NoError(t, err)

	fresh, err := MeanFrequency(raw, 1000)
	require.NoError(t, err)
	fatigued, err := MeanFrequency(smooth, 1000)
	require.NoError(t, err)

	// White noise centres near fs/4.
	assert.InDelta(t, 250, fresh, 25)
	assert.Less(t, fatigued, 60.0)

	mdf, err := MedianFrequency(smooth, 1000)
	require.NoError(t, err)
	assert.Less(t, mdf, 60.0)
}

func TestSpectralFeatures_Errors(t *testing.T) {
	_, err := MeanFrequency([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)

	_, err = MedianFrequency([]float64{1}, 1000)
	assert.ErrorIs(t, err, ErrSignalTooShort)

	_, err = MeanFrequency(nil, 1000)
	assert.ErrorIs(t, err, ErrSignalTooShort)

	_, err = MeanFrequency(make([]float64, 128), 1000)
	assert.ErrorIs(t, err, ErrNoPower)

	_, err = MedianFrequency(make([]float64, 128), 1000)
	assert.ErrorIs(t, err, ErrNoPower)
}

func TestLineInterference(t *testing.T) {
	// 50 full cycles, plus an offset that must not count as energy.
	hum := testutil.Add(testutil.DeterministicSine(50, 1000, 0.2, 1000), testutil.DC(3, 1000))

	db, err := LineInterference(hum, 50, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 0, db, 1e-6)

	noise := testutil.DeterministicNoise(22, 1, 1000)
	db, err = LineInterference(noise, 50, 1000)
	require.NoError(t, err)
	assert.Less(t, db, -10.0)

	mixed := testutil.Add(noise, testutil.DeterministicSine(50, 1000, 1, 1000))
	dbMixed, err := LineInterference(mixed, 50, 1000)
	require.NoError(t, err)
	assert.Greater(t, dbMixed, db)
}

func TestLineInterference_NotchLowersIt(t *testing.T) {
	x := testutil.Add(
		testutil.SyntheticEMG(23, 4000, 0, 0.01, testutil.Burst{Start: 0, Stop: 4000, Amplitude: 0.5}),
		testutil.DeterministicSine(50, 1000, 0.5, 4000),
	)

	before, err := LineInterference(x[2000:], 50, 1000)
	require.NoError(t, err)

	clean, err := Notch(x, 50, 1000)
	require.NoError(t, err)
	after, err := LineInterference(clean[2000:], 50, 1000)
	require.NoError(t, err)

	assert.Less(t, after, before-20)
}

func TestLineInterference_Errors(t *testing.T) {
	x := testutil.DeterministicNoise(24, 1, 100)

	_, err := LineInterference(x, 50, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)

	_, err = LineInterference(x, 0, 1000)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = LineInterference(x, 500, 1000)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = LineInterference(x, math.NaN(), 1000)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = LineInterference(testutil.DC(2, 100), 50, 1000)
	assert.ErrorIs(t, err, ErrNoPower)

	_, err = LineInterference(nil, 50, 1000)
	assert.ErrorIs(t, err, ErrNoPower)
}
