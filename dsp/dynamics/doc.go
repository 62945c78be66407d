// Package dynamics provides the output-stage processors of the kick
// renderer: a stereo-linked lookahead peak limiter with a cached window peak
// and a one-pole DC blocker.
package dynamics
