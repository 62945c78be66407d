// Package design computes biquad coefficients for the filters used by the
// kick renderer's master stage.
//
// Designs follow the RBJ audio EQ cookbook and return normalized
// [biquad.Coefficients]. Invalid frequency or sample-rate input yields the
// zero value, which the callers treat as "no filter".
package design
