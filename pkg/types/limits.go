package types

// ============================================================================
// Register Limits Constants
// ============================================================================
// The register state lives in a uint64, so sizes are bounded by the machine
// word rather than any property of the shift-register math itself.

const (
	// MinRegisterSize is the smallest meaningful register. A 1-bit register
	// is degenerate in practice (its only valid state is 1) but is permitted.
	MinRegisterSize = 1

	// MaxRegisterSize is the largest supported register size in bits. The
	// state is held in a uint64; larger registers would need a wide-integer
	// representation this package deliberately does not carry.
	MaxRegisterSize = 64
)

// Classic 4-bit demo configuration: feedback polynomial x^4 + x^3 + 1,
// maximal period 15. Used as the default by drivers and throughout the test
// suite.
const (
	DemoSize  = 4
	DemoState = 0b0110
)

// DemoTaps returns the tap set of the classic demo configuration.
// A function rather than a var so callers cannot mutate the shared slice.
func DemoTaps() []int { return []int{0, 3} }
