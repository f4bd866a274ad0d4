package lfsr

import (
	"fmt"

	"github.com/joshuapare/lfsrkit/pkg/types"
)

// Agreement returns the percentage of positions at which the two bit
// sequences match, in [0.0, 100.0]. Both inputs must be the same non-zero
// length: types.ErrEmptyInput when both are empty, types.ErrLengthMismatch
// when the lengths differ. Pure function, neither input is modified.
//
// One sequence is typically Register.Bits output and the other an externally
// loaded reference stream; Agreement itself has no notion of where either
// came from.
func Agreement(a, b []int) (float64, error) {
	if len(a) == 0 && len(b) == 0 {
		return 0, types.ErrEmptyInput
	}
	if len(a) != len(b) {
		return 0, types.Wrap(types.ErrLengthMismatch,
			fmt.Errorf("%d vs %d elements", len(a), len(b)))
	}
	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}
	return 100.0 * float64(matches) / float64(len(a)), nil
}
