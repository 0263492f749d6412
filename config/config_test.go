package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-emg/dsp/window"
	"github.com/cwbudde/algo-emg/emg"
	"github.com/cwbudde/algo-emg/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, &Config{
		SampleRate:     1000,
		FilterOrder:    2,
		NotchFreq:      50,
		NotchQ:         30,
		EnvelopeCutoff: 6,
		Window:         window.TypeHann,
		LogLevel:       zerolog.InfoLevel,
	}, cfg)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(KeySampleRate, "2048")
	t.Setenv(KeyFilterOrder, "4")
	t.Setenv(KeyNotchFreq, "60")
	t.Setenv(KeyLogLevel, "DEBUG")
	t.Setenv(KeySpectrumWindow, "Blackman")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2048.0, cfg.SampleRate)
	assert.Equal(t, 4, cfg.FilterOrder)
	assert.Equal(t, 60.0, cfg.NotchFreq)
	assert.Equal(t, 30.0, cfg.NotchQ)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, window.TypeBlackman, cfg.Window)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "EMG_NOTCH_FREQ=60\nEMG_ENVELOPE_CUTOFF=10\nEMG_NOTCH_Q=20\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	t.Setenv(KeyNotchQ, "35")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.NotchFreq)
	assert.Equal(t, 10.0, cfg.EnvelopeCutoff)
	// Environment wins over the file.
	assert.Equal(t, 35.0, cfg.NotchQ)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{KeySampleRate, "0"},
		{KeySampleRate, "abc"},
		{KeyFilterOrder, "0"},
		{KeyNotchFreq, "500"},
		{KeyNotchQ, "-1"},
		{KeyEnvelopeCutoff, "0"},
		{KeyLogLevel, "loud"},
		{KeySpectrumWindow, "kaiser"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadFrom(t.TempDir())
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{SampleRate: 2000, FilterOrder: 2, NotchFreq: 50, NotchQ: 30, EnvelopeCutoff: 6}

	x := testutil.DeterministicSine(40, 2000, 1, 4000)
	out, err := emg.LowPass(x, 100, cfg.Options(zerolog.Nop())...)
	require.NoError(t, err)

	want, err := emg.LowPass(x, 100, emg.WithSampleRate(2000), emg.WithOrder(2))
	require.NoError(t, err)
	assert.Equal(t, want, out)

	cfg.Window = window.TypeBlackman
	mnf, err := emg.MeanFrequency(x, 2000, cfg.Options(zerolog.Nop())...)
	require.NoError(t, err)
	wantMNF, err := emg.MeanFrequency(x, 2000, emg.WithWindow(window.TypeBlackman))
	require.NoError(t, err)
	assert.Equal(t, wantMNF, mnf)
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: zerolog.WarnLevel}
	logger := cfg.Logger(&buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
