// Package oversample provides half-band polyphase IIR resampling stages and
// the runtime-switchable oversampling controller that wraps the kick
// renderer's saturation stage.
//
// Each 2x stage is a pair of allpass cascades running at the lower rate
// (the classic polyphase half-band structure). Coefficients come from
// [DesignCoefficients], an elliptic design parameterized by coefficient count
// and normalized transition bandwidth. A [Chain] cascades one to three stages
// for ratios 2, 4 and 8; ratio 1 calls the shaper directly.
//
// A [Controller] publishes the active chain through an atomic pointer so the
// render thread never takes a lock. Reconfiguration builds a complete new
// chain and swaps it in; concurrent reconfigurations are serialized.
package oversample
