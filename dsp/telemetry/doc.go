// Package telemetry exposes read-only views of the render thread's output to
// other goroutines without locks.
//
// [Scope] is a single-producer single-consumer ring of recent output
// samples for level meters and oscilloscopes. [LayerSnapshot] captures the
// first [SnapshotLength] samples of each synthesis layer after a trigger for
// a static waveform preview.
package telemetry
