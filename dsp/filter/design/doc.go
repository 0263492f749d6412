// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: an RBJ-style second-order
// lowpass, a Butterworth lowpass cascade built from it, and a second-order
// IIR notch.
//
// Designers validate their parameters and return errors wrapping
// the package sentinel errors, so callers can check with errors.Is.
package design
