package pipeline

import "errors"

var (
	ErrInvalidArtifact = errors.New("invalid pipeline artifact")
	ErrMissingColumn   = errors.New("missing column")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotNumeric      = errors.New("value is not numeric")
	ErrNonFinite       = errors.New("non-finite prediction")
)

// IsInputError reports whether err was caused by the feature row rather than
// by the pipeline itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrNotNumeric)
}
