package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReference(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.bits")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAgreeCommandPerfectMatch(t *testing.T) {
	resetGlobalFlags(t)
	ref := writeReference(t, demoStream15+"\n")

	out, err := captureOutput(t, func() error {
		return runAgree(&registerFlags{size: 4}, ref)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "100.00%")
	assert.Contains(t, out, "15 bits")
}

func TestAgreeCommandInvertedReference(t *testing.T) {
	resetGlobalFlags(t)

	inverted := strings.Map(func(r rune) rune {
		if r == '0' {
			return '1'
		}
		return '0'
	}, demoStream15)
	ref := writeReference(t, inverted+"\n")

	out, err := captureOutput(t, func() error {
		return runAgree(&registerFlags{size: 4}, ref)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "0.00%")
}

func TestAgreeCommandOneBitPerLine(t *testing.T) {
	resetGlobalFlags(t)

	var b strings.Builder
	for _, ch := range demoStream15 {
		b.WriteRune(ch)
		b.WriteByte('\n')
	}
	ref := writeReference(t, b.String())

	out, err := captureOutput(t, func() error {
		return runAgree(&registerFlags{size: 4}, ref)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "100.00%")
}

func TestAgreeCommandEmptyReference(t *testing.T) {
	resetGlobalFlags(t)
	ref := writeReference(t, "# nothing but comments\n")

	_, err := captureOutput(t, func() error {
		return runAgree(&registerFlags{size: 4}, ref)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bits")
}

func TestAgreeCommandMissingFile(t *testing.T) {
	resetGlobalFlags(t)

	_, err := captureOutput(t, func() error {
		return runAgree(&registerFlags{size: 4}, filepath.Join(t.TempDir(), "absent.bits"))
	})
	assert.Error(t, err)
}

func TestPeriodCommand(t *testing.T) {
	resetGlobalFlags(t)

	out, err := captureOutput(t, func() error {
		return runPeriod(&registerFlags{size: 4})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Period: 15")
	assert.Contains(t, out, "Maximal length for 4 bits")
}

func TestMaximalPeriodFullWidth(t *testing.T) {
	assert.Equal(t, uint64(1), maximalPeriod(1))
	assert.Equal(t, uint64(15), maximalPeriod(4))
	assert.Equal(t, uint64(math.MaxUint64>>1), maximalPeriod(63))
	// 1<<64 wraps to 0 in an int shift, so the bound is built by masking.
	assert.Equal(t, uint64(math.MaxUint64), maximalPeriod(64))
}

func TestPeriodCommandDegenerate(t *testing.T) {
	resetGlobalFlags(t)

	_, err := captureOutput(t, func() error {
		return runPeriod(&registerFlags{size: 4, state: "0b0100", taps: []int{3}})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degenerate")
}

func TestTapsCommand(t *testing.T) {
	resetGlobalFlags(t)

	out, err := captureOutput(t, func() error {
		return runTaps([]string{"4"})
	})
	require.NoError(t, err)
	assert.Equal(t, "[0 3]\n", out)

	out, err = captureOutput(t, func() error {
		return runTaps(nil)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Size  Taps")

	_, err = captureOutput(t, func() error {
		return runTaps([]string{"63"})
	})
	assert.Error(t, err)
}
