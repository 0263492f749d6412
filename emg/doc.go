// Package emg conditions single-channel surface electromyography recordings
// for offline analysis.
//
// The building blocks are the classic EMG processing steps:
//
//   - [LowPass]: Butterworth low-pass applied forward and backward, so the
//     envelope is not shifted in time.
//   - [Notch]: second-order IIR notch for power-line interference, applied
//     causally in a single pass.
//   - [Rectify]: full-wave rectification about the signal mean.
//   - [Normalize] and [NormalizeToValue]: amplitude in percent of a maximum
//     voluntary contraction (MVC) reference.
//   - [RawToEnvelope]: rectify, low-pass, and optionally normalize against
//     an MVC recording processed the same way.
//
// Every function works on an in-memory []float64, never modifies its input
// and returns a freshly allocated result of the same length. Sampling rate,
// filter order and notch quality come from functional options with the
// defaults [DefaultSampleRate], [DefaultOrder] and [DefaultQuality].
//
// Amplitude and spectral features ([Amplitude], [MeanFrequency],
// [MedianFrequency], [LineInterference]) complement the conditioning steps
// for contraction and fatigue analysis.
package emg
