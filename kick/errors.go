package kick

import "errors"

var (
	// ErrNotPrepared is returned by accessors that need Prepare first.
	ErrNotPrepared = errors.New("kick: engine not prepared")
	// ErrNilParams is returned by New when no parameter source is given.
	ErrNilParams = errors.New("kick: nil parameter snapshot")
	// ErrInvalidSampleRate is returned by Prepare for non-positive rates.
	ErrInvalidSampleRate = errors.New("kick: sample rate must be positive and finite")
	// ErrInvalidBlockSize is returned by Prepare for non-positive block sizes.
	ErrInvalidBlockSize = errors.New("kick: block size must be > 0")
)
