package gradients

import "errors"

// Warning is a structured diagnostic record returned alongside a gradient
// plan instead of being written to an ambient stream.
type Warning struct {
	Code    string
	Message string
}

// Warning codes.
const (
	// WarnNoTrainableParams is emitted when differentiation is requested
	// on a tape or recorded circuit with an empty trainable-parameter set.
	WarnNoTrainableParams = "no-trainable-params"
)

// Validation errors raised before any tape is generated.
var (
	// ErrInvalidParameterSelection indicates an argnum entry outside the
	// tape's trainable-parameter set.
	ErrInvalidParameterSelection = errors.New("invalid parameter selection")
	// ErrUnsupportedStrategy indicates an unrecognized strategy or
	// derivative/approximation order combination.
	ErrUnsupportedStrategy = errors.New("unsupported finite-difference strategy")
	// ErrMalformedSampler indicates a missing sampler or one producing
	// direction vectors of the wrong length.
	ErrMalformedSampler = errors.New("malformed direction sampler")
	// ErrResultMismatch indicates a result batch whose length or shapes do
	// not match the generated tapes.
	ErrResultMismatch = errors.New("result batch does not match generated tapes")
)
