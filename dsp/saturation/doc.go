// Package saturation implements the kick renderer's waveshapers.
//
// Eleven transfer functions are selected by [Kind]. Five of them (SoftTanh,
// HardClip, BJT, Wavefold, Cubic) have closed-form antiderivatives and are
// evaluated with first-order antiderivative antialiasing (ADAA): the output
// is the divided difference (F(x) - F(x1)) / (x - x1) of the antiderivative F
// over consecutive inputs, falling back to the transfer function itself when
// the inputs are closer than [Epsilon]. The remaining kinds are evaluated
// directly; Tape additionally carries one sample of hysteresis memory.
//
// All shaping state lives in a per-channel [State] that the caller owns and
// resets on retrigger.
package saturation
