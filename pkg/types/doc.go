// Package types defines the shared vocabulary of lfsrkit: the typed error
// taxonomy returned by every validating operation, and the numeric limits a
// register configuration must respect.
//
// Errors carry a stable ErrKind so callers branch on intent rather than
// message text:
//
//	r, err := lfsr.New(4, 0, []int{3, 2})
//	if errors.Is(err, types.ErrInvalidConfig) {
//	    // prompt the user for a non-zero seed
//	}
//
// All errors are detected synchronously at the offending call and reported to
// the immediate caller; nothing is retried or logged internally.
package types
