// Package spectrum provides power-spectrum estimation and single-bin tone
// analysis for real-valued recordings.
//
// FFTs are delegated to algo-fft; this package handles windowing, one-sided
// density scaling and summary statistics such as the spectral centroid and
// median frequency. [Goertzel] evaluates a single DFT bin without a full
// transform, which is the cheap way to measure one interference line.
package spectrum
