package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Factor table errors. Compute itself never fails; these are only returned
// while loading or validating factor tables.
var (
	// ErrUnknownFactorKey indicates a factor table key outside the recognized enums.
	ErrUnknownFactorKey = constError("unknown emission factor key")

	// ErrMissingFactor indicates a recognized key with no factor value.
	ErrMissingFactor = constError("missing emission factor")

	// ErrInvalidFactor indicates a negative, NaN or infinite factor value.
	ErrInvalidFactor = constError("invalid emission factor")
)
