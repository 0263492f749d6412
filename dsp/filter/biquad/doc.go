// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections are
// cascaded via [Chain] for higher-order filters such as Butterworth.
//
// Besides sample and block processing, a Chain can filter a whole
// recording causally ([Chain.Filter]) or zero-phase ([Chain.FiltFilt]),
// the latter with odd edge extension and steady-state initial conditions.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
