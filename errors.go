package arithcode

import "fmt"

// PreconditionError reports a caller bug: an invalid CDF, a symbol outside
// the alphabet, or a probability too small for the coder's width to
// represent. Precondition violations are not runtime-recoverable — the
// caller's model is wrong, not the coder's internal state.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return "arithcode: precondition violated: " + e.Msg }

// InvariantError reports that the arithmetic interval collapsed to zero
// length mid-encode or mid-decode. This indicates either a CDF whose
// smallest probability is below the width's resolution, or a bug in the
// coder itself; it is never expected in correct operation.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "arithcode: invariant violated: " + e.Msg }

// newPrecondition builds a PreconditionError with a formatted message.
func newPrecondition(format string, args ...any) error {
	return &PreconditionError{Msg: fmt.Sprintf(format, args...)}
}

// newInvariant builds an InvariantError with a formatted message.
func newInvariant(format string, args ...any) error {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}
