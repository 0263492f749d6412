// Package config loads processing defaults for the EMG tools from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-emg/dsp/core"
	"github.com/cwbudde/algo-emg/dsp/window"
	"github.com/cwbudde/algo-emg/emg"
)

// Keys, also the environment variable names.
const (
	KeySampleRate     = "EMG_SAMPLE_RATE"
	KeyFilterOrder    = "EMG_FILTER_ORDER"
	KeyNotchFreq      = "EMG_NOTCH_FREQ"
	KeyNotchQ         = "EMG_NOTCH_Q"
	KeyEnvelopeCutoff = "EMG_ENVELOPE_CUTOFF"
	KeySpectrumWindow = "EMG_SPECTRUM_WINDOW"
	KeyLogLevel       = "EMG_LOG_LEVEL"
)

// ErrInvalid is returned by Load when a setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the processing parameters shared by the command-line tools.
type Config struct {
	SampleRate     float64 // Hz
	FilterOrder    int     // Butterworth order of the envelope low-pass
	NotchFreq      float64 // mains frequency, Hz
	NotchQ         float64
	EnvelopeCutoff float64 // Hz
	Window         window.Type
	LogLevel       zerolog.Level
}

// Load reads the configuration from ./.env and the environment.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads dir/.env if it exists, then lets environment variables
// override both the file and the built-in defaults.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeySampleRate, emg.DefaultSampleRate)
	v.SetDefault(KeyFilterOrder, emg.DefaultOrder)
	v.SetDefault(KeyNotchFreq, 50.0)
	v.SetDefault(KeyNotchQ, emg.DefaultQuality)
	v.SetDefault(KeyEnvelopeCutoff, 6.0)
	v.SetDefault(KeySpectrumWindow, window.TypeHann.String())
	v.SetDefault(KeyLogLevel, "info")

	v.SetConfigFile(filepath.Join(dir, ".env"))
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
	}

	v.AutomaticEnv()

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}

	win, err := window.Parse(v.GetString(KeySpectrumWindow))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, KeySpectrumWindow, err)
	}

	cfg := &Config{
		SampleRate:     v.GetFloat64(KeySampleRate),
		FilterOrder:    v.GetInt(KeyFilterOrder),
		NotchFreq:      v.GetFloat64(KeyNotchFreq),
		NotchQ:         v.GetFloat64(KeyNotchQ),
		EnvelopeCutoff: v.GetFloat64(KeyEnvelopeCutoff),
		Window:         win,
		LogLevel:       level,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every parameter is usable for filter design.
func (c *Config) Validate() error {
	if !core.PositiveFinite(c.SampleRate) {
		return fmt.Errorf("%w: %s=%v", ErrInvalid, KeySampleRate, c.SampleRate)
	}
	if c.FilterOrder < 1 {
		return fmt.Errorf("%w: %s=%d", ErrInvalid, KeyFilterOrder, c.FilterOrder)
	}

	nyquist := c.SampleRate / 2
	if !core.BelowNyquist(c.NotchFreq, c.SampleRate) {
		return fmt.Errorf("%w: %s=%v must lie below %v Hz", ErrInvalid, KeyNotchFreq, c.NotchFreq, nyquist)
	}
	if !core.BelowNyquist(c.EnvelopeCutoff, c.SampleRate) {
		return fmt.Errorf("%w: %s=%v must lie below %v Hz", ErrInvalid, KeyEnvelopeCutoff, c.EnvelopeCutoff, nyquist)
	}
	if !core.PositiveFinite(c.NotchQ) {
		return fmt.Errorf("%w: %s=%v", ErrInvalid, KeyNotchQ, c.NotchQ)
	}

	return nil
}

// Options converts the configuration into emg options: sample rate,
// filter order, notch quality, spectrum window and logger. cmd/emginfo
// passes them to every emg call it makes.
func (c *Config) Options(logger zerolog.Logger) []emg.Option {
	return []emg.Option{
		emg.WithSampleRate(c.SampleRate),
		emg.WithOrder(c.FilterOrder),
		emg.WithQuality(c.NotchQ),
		emg.WithWindow(c.Window),
		emg.WithLogger(logger),
	}
}

// Logger returns a human-readable console logger at the configured level.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(c.LogLevel).
		With().
		Timestamp().
		Logger()
}
