package lfsr

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/joshuapare/lfsrkit/pkg/types"
)

// Register is a Fibonacci-configuration linear feedback shift register.
//
// The state is an n-bit unsigned integer with bit 0 as the register output.
// Each step emits bit 0, shifts the state right by one, and injects the XOR
// parity of the tapped bits into bit n-1. Taps are held as a precomputed
// mask so the parity is a single popcount.
//
// A Register is a plain value owned by its caller; it performs no locking
// and no I/O. Callers sharing one Register across goroutines must serialize
// NextBit/SetState themselves.
type Register struct {
	size    int
	state   uint64
	tapMask uint64
}

// New constructs a Register with an explicit size, initial state, and tap
// set. It fails with types.ErrInvalidConfig when size is outside
// [types.MinRegisterSize, types.MaxRegisterSize], state is zero or does not
// fit in size bits, or taps is empty or names a position >= size.
func New(size int, state uint64, taps []int) (*Register, error) {
	if size < types.MinRegisterSize || size > types.MaxRegisterSize {
		return nil, types.Wrap(types.ErrInvalidConfig,
			fmt.Errorf("size %d outside [%d, %d]", size, types.MinRegisterSize, types.MaxRegisterSize))
	}
	r := &Register{size: size}
	if err := r.SetState(state); err != nil {
		return nil, types.Wrap(types.ErrInvalidConfig, err)
	}
	if err := r.SetTaps(taps); err != nil {
		return nil, types.Wrap(types.ErrInvalidConfig, err)
	}
	return r, nil
}

// mask returns the all-ones mask covering size bits. Valid for size 1..64.
func (r *Register) mask() uint64 {
	return ^uint64(0) >> (64 - uint(r.size))
}

// Size returns the register width in bits.
func (r *Register) Size() int { return r.size }

// State returns the current state value.
func (r *Register) State() uint64 { return r.state }

// Taps returns the tap positions in ascending order. The slice is freshly
// allocated; mutating it does not affect the register.
func (r *Register) Taps() []int {
	taps := make([]int, 0, bits.OnesCount64(r.tapMask))
	for pos := 0; pos < r.size; pos++ {
		if r.tapMask&(1<<uint(pos)) != 0 {
			taps = append(taps, pos)
		}
	}
	return taps
}

// SetState replaces the current state. It fails with types.ErrInvalidState
// when state is zero (the all-zero fixed point) or does not fit in the
// register's size. Size and taps are untouched.
func (r *Register) SetState(state uint64) error {
	if state == 0 {
		return types.Wrap(types.ErrInvalidState, fmt.Errorf("state must be non-zero"))
	}
	if state&^r.mask() != 0 {
		return types.Wrap(types.ErrInvalidState,
			fmt.Errorf("state %#x does not fit in %d bits", state, r.size))
	}
	r.state = state
	return nil
}

// SetTaps replaces the tap set. It fails with types.ErrInvalidTaps when taps
// is empty or any position falls outside [0, size). Duplicate positions
// collapse: taps are a set, and XOR parity over a set is unaffected by
// listing a position twice.
func (r *Register) SetTaps(taps []int) error {
	if len(taps) == 0 {
		return types.Wrap(types.ErrInvalidTaps, fmt.Errorf("tap set must be non-empty"))
	}
	var mask uint64
	for _, pos := range taps {
		if pos < 0 || pos >= r.size {
			return types.Wrap(types.ErrInvalidTaps,
				fmt.Errorf("tap %d outside [0, %d)", pos, r.size))
		}
		mask |= 1 << uint(pos)
	}
	r.tapMask = mask
	return nil
}

// NextBit emits the next stream bit and advances the register by one step.
//
// The output is bit 0 of the pre-step state; the feedback is the XOR parity
// of the tapped bits of that same pre-step state, never of a partially
// shifted intermediate. When the shifted state would be zero the register is
// left unchanged and types.ErrDegenerateCycle is returned: the tap
// configuration has driven the state onto the all-zero fixed point.
func (r *Register) NextBit() (int, error) {
	out := int(r.state & 1)
	feedback := uint64(bits.OnesCount64(r.state&r.tapMask) & 1)
	next := (r.state >> 1) | (feedback << uint(r.size-1))
	if next == 0 {
		return 0, types.ErrDegenerateCycle
	}
	r.state = next
	return out, nil
}

// Bits emits the next k stream bits in order, advancing the register k
// steps. Consuming bits is inherently stateful: call SetState first to
// restart a stream. A negative k is a caller bug and is rejected outright.
func (r *Register) Bits(k int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("bit count must be non-negative, got %d", k)
	}
	out := make([]int, k)
	for i := range out {
		b, err := r.NextBit()
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// Period returns the number of steps until the state first returns to its
// value at call time. The register is restored to that value afterward: on
// success the loop stops exactly at the first repetition, and on failure the
// starting state is reinstated explicitly.
//
// The state space is finite, so the walk is bounded by 2^size - 1 non-zero
// states. Two degenerate outcomes surface as types.ErrDegenerateCycle: the
// transition reaches zero, or the walk exhausts the state bound without
// returning, meaning the starting state sits on a tail leading into a cycle
// it does not belong to (possible only when bit 0 is untapped, which makes
// the transition non-invertible).
func (r *Register) Period() (int, error) {
	start := r.state
	bound := r.mask() // 2^size - 1 reachable non-zero states
	var steps uint64
	for steps < bound {
		if _, err := r.NextBit(); err != nil {
			r.state = start
			return 0, err
		}
		steps++
		if r.state == start {
			return int(steps), nil
		}
	}
	r.state = start
	return 0, types.Wrap(types.ErrDegenerateCycle,
		fmt.Errorf("state %#x not revisited within %d steps", start, bound))
}

// StateBits returns the current state as individual bits, index 0 = LSB
// through index size-1 = MSB. Pure read, no mutation.
func (r *Register) StateBits() []int {
	out := make([]int, r.size)
	for pos := range out {
		out[pos] = int(r.state >> uint(pos) & 1)
	}
	return out
}

// StateString renders the state as a zero-padded binary string, MSB first,
// the way register contents are conventionally written (R_{n-1}..R_0).
func (r *Register) StateString() string {
	s := strconv.FormatUint(r.state, 2)
	for len(s) < r.size {
		s = "0" + s
	}
	return s
}
