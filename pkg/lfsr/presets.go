package lfsr

// maximalTaps maps register sizes to a known maximal-length tap set for that
// size (0-based positions, ascending). Tap set T for an n-bit register
// realizes the feedback polynomial x^n + sum of x^p for p in T; the set is
// maximal when that polynomial is primitive, making the register cycle
// through all 2^n - 1 non-zero states. Every set includes position 0: the
// constant term of the polynomial. Without it the transition is not
// invertible and trajectories collapse onto short cycles.
//
// Sizes drawn from the standard shift-register tap tables; not every size in
// [2, 64] is listed, only the commonly used ones.
var maximalTaps = map[int][]int{
	2:  {0, 1},
	3:  {0, 2},
	4:  {0, 3},
	5:  {0, 3},
	6:  {0, 5},
	7:  {0, 6},
	8:  {0, 4, 5, 6},
	9:  {0, 5},
	10: {0, 7},
	11: {0, 9},
	12: {0, 1, 4, 6},
	13: {0, 1, 3, 4},
	14: {0, 1, 3, 5},
	15: {0, 14},
	16: {0, 4, 13, 15},
	17: {0, 14},
	18: {0, 11},
	19: {0, 1, 2, 6},
	20: {0, 17},
	21: {0, 19},
	22: {0, 21},
	23: {0, 18},
	24: {0, 17, 22, 23},
	31: {0, 28},
	32: {0, 1, 2, 22},
	64: {0, 60, 61, 63},
}

// MaximalTaps returns a known maximal-length tap set for the given register
// size, or false when no preset is recorded for that size. The returned
// slice is freshly allocated.
func MaximalTaps(size int) ([]int, bool) {
	taps, ok := maximalTaps[size]
	if !ok {
		return nil, false
	}
	out := make([]int, len(taps))
	copy(out, taps)
	return out, true
}

// PresetSizes returns the register sizes with recorded maximal-length tap
// sets, in ascending order.
func PresetSizes() []int {
	sizes := make([]int, 0, len(maximalTaps))
	for n := 2; n <= 64; n++ {
		if _, ok := maximalTaps[n]; ok {
			sizes = append(sizes, n)
		}
	}
	return sizes
}
