// Package kick renders a three-layer kick drum: a filtered attack
// transient, a pitch-swept body and a sine sub, summed and run through an
// oversampled saturator and a master chain of low-pass, stereo width,
// lookahead limiter and DC blocker.
//
// Controls live in a lock-free [Params] store that any goroutine may
// update. An [Engine] reads them once per block through the [Snapshot]
// interface, smooths them per sample and renders with no allocation.
package kick
