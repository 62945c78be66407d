// Package smooth provides click-free parameter interpolation.
//
// A [Linear] smoother moves from its current value to a new target in a
// fixed number of equal steps. A [Bank] groups one smoother per control so a
// renderer can advance all of them once per sample and read the interpolated
// values by index.
package smooth
