package fftlog

import "gonum.org/v1/gonum/floats"

// LogSpace returns n log-evenly spaced points from lo to hi inclusive.
// It is a convenience for building grids accepted by New.
func LogSpace(lo, hi float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), lo, hi)
}
