package biquad

import (
	"errors"
	"fmt"
)

// ErrSignalTooShort is returned by FiltFilt when the input does not exceed
// the edge padding length.
var ErrSignalTooShort = errors.New("biquad: signal must be longer than the padding length")

type filtFiltConfig struct {
	padLen int // negative selects the default
}

// FiltFiltOption configures Chain.FiltFilt.
type FiltFiltOption func(*filtFiltConfig)

// WithPadLen overrides the number of samples extended at each edge before
// filtering. Zero disables padding. Negative values are ignored.
func WithPadLen(n int) FiltFiltOption {
	return func(cfg *filtFiltConfig) {
		if n >= 0 {
			cfg.padLen = n
		}
	}
}

// DefaultPadLen returns the edge extension used by FiltFilt when no
// override is given: three times the length of the equivalent transfer
// function polynomial.
func (c *Chain) DefaultPadLen() int {
	return 3 * (c.Order() + 1)
}

// FiltFilt applies the cascade forward and then backward over x, giving a
// zero-phase result whose magnitude response is the square of the chain's.
//
// Both ends of x are extended by odd reflection about the edge sample, and
// each pass starts from the steady-state delay lines for its first input so
// that no start-up transient leaks into the output (Gustafsson, 1996).
// The chain's own state is left untouched; x is not modified.
func (c *Chain) FiltFilt(x []float64, opts ...FiltFiltOption) ([]float64, error) {
	cfg := filtFiltConfig{padLen: -1}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	edge := cfg.padLen
	if edge < 0 {
		edge = c.DefaultPadLen()
	}

	n := len(x)
	if n <= edge || n == 0 {
		return nil, fmt.Errorf("%w: length %d, padlen %d", ErrSignalTooShort, n, edge)
	}

	ext := oddExtend(x, edge)
	zi := c.steadyState()
	work := c.clone()

	// Forward pass.
	work.loadState(zi, ext[0])
	work.ProcessBlock(ext)

	// Backward pass.
	work.loadState(zi, ext[len(ext)-1])
	if work.gain != 1 {
		for i, v := range ext {
			ext[i] = v * work.gain
		}
	}
	for i := range work.sections {
		work.sections[i].ProcessBlockReverse(ext)
	}

	out := make([]float64, n)
	copy(out, ext[edge:edge+n])

	return out, nil
}

// steadyState returns per-section step-response equilibria for the whole
// cascade. Each section sees the DC output of everything before it, so its
// unit-step state is scaled by the accumulated DC gain.
func (c *Chain) steadyState() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	scale := c.gain
	for i := range c.sections {
		ss := c.sections[i].SteadyState()
		states[i] = [2]float64{scale * ss[0], scale * ss[1]}
		scale *= c.sections[i].DCGain()
	}

	return states
}

func (c *Chain) loadState(zi [][2]float64, x0 float64) {
	for i := range c.sections {
		c.sections[i].SetState([2]float64{zi[i][0] * x0, zi[i][1] * x0})
	}
}

// oddExtend returns x with edge samples prepended and appended, reflected
// about x[0] and x[n-1] respectively (point symmetry).
func oddExtend(x []float64, edge int) []float64 {
	n := len(x)
	out := make([]float64, n+2*edge)
	first, last := x[0], x[n-1]

	for i := 0; i < edge; i++ {
		out[i] = 2*first - x[edge-i]
	}

	copy(out[edge:], x)

	for i := 0; i < edge; i++ {
		out[edge+n+i] = 2*last - x[n-2-i]
	}

	return out
}
