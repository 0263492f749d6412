// Command emginfo prints the filters used for EMG conditioning, their
// frequency response and the transients they produce on test signals.
//
// Usage:
//
//	emginfo [flags]
//
// Defaults come from the EMG_* environment variables or a .env file in the
// working directory; flags override them.
//
// Examples:
//
//	emginfo
//	emginfo -fs 2048 -cutoff 10 -order 4
//	emginfo -notch 60 -q 20 -freqs 55,58,60,62,65
//	emginfo -window blackman
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-emg/config"
	"github.com/cwbudde/algo-emg/dsp/filter/biquad"
	"github.com/cwbudde/algo-emg/dsp/filter/design"
	"github.com/cwbudde/algo-emg/dsp/window"
	"github.com/cwbudde/algo-emg/emg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fs := flag.Float64("fs", cfg.SampleRate, "sample rate in Hz")
	order := flag.Int("order", cfg.FilterOrder, "Butterworth low-pass order")
	cutoff := flag.Float64("cutoff", cfg.EnvelopeCutoff, "envelope low-pass cutoff in Hz")
	notch := flag.Float64("notch", cfg.NotchFreq, "notch (mains) frequency in Hz")
	q := flag.Float64("q", cfg.NotchQ, "notch quality factor")
	win := flag.String("window", cfg.Window.String(), "spectrum window: rectangular, hann, hamming or blackman")
	freqs := flag.String("freqs", "", "comma-separated frequencies to evaluate (default: a spread up to Nyquist)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: emginfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the envelope low-pass and mains notch filters and their response.\n")
		fmt.Fprintf(os.Stderr, "Defaults are read from EMG_* environment variables and ./.env.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg.SampleRate, cfg.FilterOrder, cfg.EnvelopeCutoff, cfg.NotchFreq, cfg.NotchQ = *fs, *order, *cutoff, *notch, *q
	logger := cfg.Logger(os.Stderr)

	if cfg.Window, err = window.Parse(*win); err != nil {
		logger.Error().Err(err).Msg("invalid -window")
		os.Exit(2)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid parameters")
		os.Exit(2)
	}

	points, err := parseFreqs(*freqs, cfg.SampleRate)
	if err != nil {
		logger.Error().Err(err).Msg("invalid -freqs")
		os.Exit(2)
	}

	if err := run(os.Stdout, cfg, points, logger); err != nil {
		logger.Error().Err(err).Msg("emginfo failed")
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *config.Config, points []float64, logger zerolog.Logger) error {
	lpCoeffs, err := design.ButterworthLP(cfg.EnvelopeCutoff, cfg.FilterOrder, cfg.SampleRate)
	if err != nil {
		return fmt.Errorf("low-pass: %w", err)
	}
	notchCoeffs, err := design.IIRNotch(cfg.NotchFreq, cfg.NotchQ, cfg.SampleRate)
	if err != nil {
		return fmt.Errorf("notch: %w", err)
	}

	lp := biquad.NewChain(lpCoeffs)
	nf := biquad.NewChain([]biquad.Coefficients{notchCoeffs})

	logger.Debug().
		Int("sections", lp.NumSections()).
		Int("pad_len", lp.DefaultPadLen()).
		Bool("stable", lp.Stable() && nf.Stable()).
		Msg("filters designed")

	fmt.Fprintf(w, "Sample rate %g Hz, envelope low-pass order %d at %g Hz, notch %g Hz (Q=%g)\n\n",
		cfg.SampleRate, cfg.FilterOrder, cfg.EnvelopeCutoff, cfg.NotchFreq, cfg.NotchQ)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Filter\tSection\tb0\tb1\tb2\ta1\ta2\n")
	fmt.Fprintf(tw, "------\t-------\t--\t--\t--\t--\t--\n")
	for i, c := range lpCoeffs {
		writeSection(tw, "lowpass", i, c)
	}
	writeSection(tw, "notch", 0, notchCoeffs)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nFiltfilt edge padding: %d samples\n\n", lp.DefaultPadLen())

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tLowpass [dB]\tZero-phase [dB]\tNotch [dB]\tNotch phase [deg]\n")
	fmt.Fprintf(tw, "---------\t------------\t---------------\t----------\t-----------------\n")
	for _, f := range points {
		fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			f,
			lp.MagnitudeDB(f, cfg.SampleRate),
			lp.ZeroPhaseMagnitudeDB(f, cfg.SampleRate),
			nf.MagnitudeDB(f, cfg.SampleRate),
			notchCoeffs.Phase(f, cfg.SampleRate)*180/math.Pi,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return writeTransients(w, cfg, lp, logger)
}

// writeTransients runs test signals through the emg functions with the
// configured options and reports how long the filters take to settle.
func writeTransients(w io.Writer, cfg *config.Config, lp *biquad.Chain, logger zerolog.Logger) error {
	opts := cfg.Options(logger)
	n := transientLen(cfg.SampleRate)
	ms := func(samples int) float64 { return float64(samples) / cfg.SampleRate * 1000 }

	fmt.Fprintf(w, "\nTransients (%d-sample test signals, -60 dB threshold)\n", n)

	ir := lp.ImpulseResponse(n)
	if k, ok := settled(ir); ok {
		fmt.Fprintf(w, "  Low-pass impulse response decays after %d samples (%.1f ms)\n", k, ms(k))
	} else {
		fmt.Fprintf(w, "  Low-pass impulse response decays after more than %d samples\n", n)
	}

	impulse := make([]float64, n)
	impulse[0] = 1
	ringing, err := emg.Notch(impulse, cfg.NotchFreq, cfg.SampleRate, opts...)
	if err != nil {
		return fmt.Errorf("notch: %w", err)
	}
	if k, ok := settled(ringing); ok {
		fmt.Fprintf(w, "  Notch start-up transient lasts %d samples (%.1f ms)\n", k, ms(k))
	} else {
		fmt.Fprintf(w, "  Notch start-up transient lasts more than %d samples\n", n)
	}

	step := make([]float64, n)
	for i := n / 2; i < n; i++ {
		step[i] = 1
	}
	env, err := emg.LowPass(step, cfg.EnvelopeCutoff, opts...)
	if err != nil {
		return fmt.Errorf("envelope step: %w", err)
	}
	if rise, ok := riseTime(env); ok {
		fmt.Fprintf(w, "  Envelope step rise time (10-90%%): %.1f ms\n", ms(rise))
	} else {
		fmt.Fprintf(w, "  Envelope step rise time (10-90%%): longer than the test signal\n")
	}

	centred := make([]float64, n)
	centred[n/2] = 1
	zp, err := emg.LowPass(centred, cfg.EnvelopeCutoff, opts...)
	if err != nil {
		return fmt.Errorf("envelope impulse: %w", err)
	}
	mnf, err := emg.MeanFrequency(zp, cfg.SampleRate, opts...)
	if err != nil {
		return fmt.Errorf("envelope mean frequency: %w", err)
	}
	fmt.Fprintf(w, "  Envelope impulse response mean frequency (%s window): %.2f Hz\n", cfg.Window, mnf)

	return nil
}

// transientLen is ten seconds of signal, at least 1024 samples.
func transientLen(sampleRate float64) int {
	return max(int(10*sampleRate), 1024)
}

// settled returns the number of leading samples of x that reach at least
// -60 dB of its largest magnitude. ok is false if x has not decayed by its end.
func settled(x []float64) (int, bool) {
	peak := 0.0
	for _, v := range x {
		peak = max(peak, math.Abs(v))
	}
	if peak == 0 {
		return 0, true
	}

	limit := peak * 1e-3
	last := -1
	for i, v := range x {
		if math.Abs(v) >= limit {
			last = i
		}
	}

	return last + 1, last < len(x)-1
}

// riseTime returns the samples between the first 10% and 90% crossings of
// a unit step response.
func riseTime(y []float64) (int, bool) {
	lo, hi := -1, -1
	for i, v := range y {
		if lo < 0 && v >= 0.1 {
			lo = i
		}
		if v >= 0.9 {
			hi = i
			break
		}
	}
	if lo < 0 || hi < 0 {
		return 0, false
	}

	return hi - lo, true
}

func writeSection(w io.Writer, name string, i int, c biquad.Coefficients) {
	fmt.Fprintf(w, "%s\t%d\t%.10f\t%.10f\t%.10f\t%.10f\t%.10f\n", name, i, c.B0, c.B1, c.B2, c.A1, c.A2)
}

// parseFreqs parses a comma-separated list. An empty list yields a default
// spread from 1 Hz to just below Nyquist.
func parseFreqs(s string, sampleRate float64) ([]float64, error) {
	nyquist := sampleRate / 2
	if strings.TrimSpace(s) == "" {
		var out []float64
		for _, f := range []float64{1, 3, 6, 10, 20, 50, 60, 100, 200, 400} {
			if f < nyquist {
				out = append(out, f)
			}
		}
		return out, nil
	}

	var out []float64
	for _, field := range strings.Split(s, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		if f < 0 || f > nyquist {
			return nil, fmt.Errorf("%g Hz outside [0, %g]", f, nyquist)
		}
		out = append(out, f)
	}

	return out, nil
}
