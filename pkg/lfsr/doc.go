/*
Package lfsr implements a Fibonacci-configuration linear feedback shift
register as a pure in-memory state machine.

# Quick Start

The classic 4-bit lecture register:

	r, err := lfsr.New(4, 0b0110, []int{0, 3})
	if err != nil {
	    log.Fatal(err)
	}
	for i := 0; i < 30; i++ {
	    fmt.Println(r.StateString(), must(r.NextBit()))
	}

# Conventions

  - State is an n-bit unsigned integer, 0 < state < 2^n. The all-zero state
    is a fixed point and is rejected everywhere.
  - Taps are 0-based bit positions, 0 = least significant. Duplicates are
    idempotent; callers should treat taps as a set.
  - Output bit = bit 0 of the state before the shift.
  - Feedback bit = XOR of the tapped bits of that same pre-shift state.
  - New state = (state >> 1) | (feedback << (n-1)).

# Derived queries

Bits emits a finite stream by stepping k times. Period walks the state cycle
back to its starting point and restores the register. Agreement scores two
equal-length bit sequences as a matching percentage. MaximalTaps looks up a
known maximal-length tap set for a given size.

# Errors

Every rejected input surfaces as a typed error from pkg/types; match with
errors.Is against the sentinels (types.ErrInvalidConfig and friends).

Sizes beyond 64 bits are not supported: state lives in a uint64.
*/
package lfsr
