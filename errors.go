package algospl

import "errors"

// Sentinel errors returned by the validated entry points.
var (
	// ErrInvalidLength is returned when a buffer length is not a positive
	// power of 2.
	ErrInvalidLength = errors.New("algospl: buffer length is not a power of 2")

	// ErrInvalidStages is returned when a stage count is outside [0, 30].
	ErrInvalidStages = errors.New("algospl: invalid stage count")

	// ErrNilSlice is returned when a nil or empty slice is passed where
	// samples are required.
	ErrNilSlice = errors.New("algospl: nil slice")

	// ErrLengthMismatch is returned when slice sizes don't match the
	// expected dimensions.
	ErrLengthMismatch = errors.New("algospl: slice length mismatch")
)
