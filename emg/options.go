package emg

import (
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-emg/dsp/window"
)

const (
	// DefaultSampleRate is the assumed acquisition rate in Hz.
	DefaultSampleRate = 1000.0
	// DefaultOrder is the Butterworth low-pass order.
	DefaultOrder = 2
	// DefaultQuality is the notch quality factor (centre frequency / bandwidth).
	DefaultQuality = 30.0
)

// Option configures the conditioning functions.
type Option func(*config)

type config struct {
	sampleRate   float64
	order        int
	quality      float64
	reference    []float64
	hasReference bool
	window       window.Type
	logger       zerolog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		sampleRate: DefaultSampleRate,
		order:      DefaultOrder,
		quality:    DefaultQuality,
		window:     window.TypeHann,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSampleRate sets the sampling rate of the recording in Hz.
// Invalid rates are reported by the function that uses them.
func WithSampleRate(hz float64) Option {
	return func(c *config) { c.sampleRate = hz }
}

// WithOrder sets the Butterworth low-pass order.
func WithOrder(order int) Option {
	return func(c *config) { c.order = order }
}

// WithQuality sets the notch quality factor.
func WithQuality(q float64) Option {
	return func(c *config) { c.quality = q }
}

// WithReference supplies an MVC recording. RawToEnvelope then expresses
// the envelope in percent of the reference envelope's maximum.
// The slice is not copied and must not be modified during the call.
func WithReference(mvc []float64) Option {
	return func(c *config) {
		c.reference = mvc
		c.hasReference = true
	}
}

// WithWindow selects the taper applied before the FFT in MeanFrequency
// and MedianFrequency. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) { c.window = t }
}

// WithLogger attaches a logger that receives debug events for each
// processing stage. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}
