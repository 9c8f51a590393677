// Package spline resamples a sequence of control points into n evenly
// spaced samples on an open or closed B-spline.
//
// The package splits responsibility in two: Resample owns degree clamping,
// control-point extension for closed curves, knot-vector construction, and
// the sampling domain; actual basis-function evaluation sits behind the
// Evaluator interface so any conforming numerical routine can be plugged in.
// DeBoor is the bundled evaluator.
package spline
