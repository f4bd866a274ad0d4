package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demoStream15 is the first full period of the default demo register.
const demoStream15 = "011001000111101"

func TestStreamCommand(t *testing.T) {
	resetGlobalFlags(t)

	out, err := captureOutput(t, func() error {
		return runStream(&registerFlags{size: 4}, 15, "")
	})
	require.NoError(t, err)
	assert.Equal(t, demoStream15+"\n", out)
}

func TestStreamCommandPeriodicity(t *testing.T) {
	resetGlobalFlags(t)

	out, err := captureOutput(t, func() error {
		return runStream(&registerFlags{size: 4}, 30, "")
	})
	require.NoError(t, err)
	assert.Equal(t, demoStream15+demoStream15+"\n", out)
}

func TestStreamCommandToFile(t *testing.T) {
	resetGlobalFlags(t)
	path := filepath.Join(t.TempDir(), "stream.bits")

	out, err := captureOutput(t, func() error {
		return runStream(&registerFlags{size: 4}, 15, path)
	})
	require.NoError(t, err)
	assert.Empty(t, out, "file output should not echo to stdout")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, demoStream15+"\n", string(data))
}

func TestStreamCommandConfigFile(t *testing.T) {
	resetGlobalFlags(t)
	cfg := filepath.Join(t.TempDir(), "register.yaml")
	require.NoError(t, os.WriteFile(cfg,
		[]byte("size: 4\nstate: 0b0110\ntaps: [0, 3]\n"), 0644))

	out, err := captureOutput(t, func() error {
		return runStream(&registerFlags{configPath: cfg}, 15, "")
	})
	require.NoError(t, err)
	assert.Equal(t, demoStream15+"\n", out)
}

func TestStreamCommandDegenerateRegister(t *testing.T) {
	resetGlobalFlags(t)

	// Tap 3 only from state 0001 hits the all-zero state immediately.
	_, err := captureOutput(t, func() error {
		return runStream(&registerFlags{size: 4, state: "1", taps: []int{3}}, 5, "")
	})
	assert.Error(t, err)
}
