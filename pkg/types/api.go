package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindConfig     ErrKind = iota // invalid size/state/taps at construction
	ErrKindState                     // set-state rejected (zero or out of range)
	ErrKindTaps                      // set-taps rejected (empty or out of range)
	ErrKindDegenerate                // step transition would reach the all-zero state
	ErrKindLength                    // agreement inputs have different lengths
	ErrKindEmpty                     // agreement inputs are zero-length
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality so errors.Is matches any Error of the same kind,
// letting implementations wrap sentinels with call-site detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidConfig indicates a rejected register configuration.
	ErrInvalidConfig = &Error{Kind: ErrKindConfig, Msg: "invalid register configuration"}
	// ErrInvalidState indicates a rejected state value (zero or >= 2^size).
	ErrInvalidState = &Error{Kind: ErrKindState, Msg: "invalid register state"}
	// ErrInvalidTaps indicates a rejected tap set (empty or position >= size).
	ErrInvalidTaps = &Error{Kind: ErrKindTaps, Msg: "invalid tap positions"}
	// ErrDegenerateCycle indicates the step transition reached the forbidden
	// all-zero state; the tap configuration does not yield a proper cycle.
	ErrDegenerateCycle = &Error{Kind: ErrKindDegenerate, Msg: "degenerate cycle: state reached zero"}
	// ErrLengthMismatch indicates agreement inputs of differing length.
	ErrLengthMismatch = &Error{Kind: ErrKindLength, Msg: "sequence lengths differ"}
	// ErrEmptyInput indicates zero-length agreement inputs.
	ErrEmptyInput = &Error{Kind: ErrKindEmpty, Msg: "empty input sequences"}
)

// Wrap attaches call-site detail to a sentinel while preserving its kind for
// errors.Is matching.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: err}
}
