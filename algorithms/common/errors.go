package common

import "errors"

// Error kinds shared by all algorithm packages. Functions wrap these with
// fmt.Errorf("%w: ...") naming the violated constraint, so callers can
// discriminate with errors.Is while still getting a precise message.
var (
	// ErrInvalidArgument reports a precondition violation: bad shape,
	// non-whole sample count, unsupported method, mismatched buffer
	// lengths, out-of-range axis.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain reports an input that is structurally fine but leaves the
	// operation mathematically undefined (e.g. trimming away all but one
	// sample before taking a standard deviation).
	ErrDomain = errors.New("domain error")
)
