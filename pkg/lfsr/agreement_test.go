package lfsr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lfsrkit/pkg/lfsr"
	"github.com/joshuapare/lfsrkit/pkg/types"
)

func TestAgreement(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want float64
	}{
		{"identical", []int{1, 0, 1, 1}, []int{1, 0, 1, 1}, 100.0},
		{"inverted", []int{1, 0, 1, 1}, []int{0, 1, 0, 0}, 0.0},
		{"three of four", []int{1, 1, 0, 0}, []int{1, 0, 0, 0}, 75.0},
		{"single match", []int{1}, []int{1}, 100.0},
		{"single miss", []int{1}, []int{0}, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lfsr.Agreement(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAgreementErrors(t *testing.T) {
	_, err := lfsr.Agreement([]int{1, 0}, []int{1})
	assert.ErrorIs(t, err, types.ErrLengthMismatch)

	_, err = lfsr.Agreement(nil, nil)
	assert.ErrorIs(t, err, types.ErrEmptyInput)

	_, err = lfsr.Agreement([]int{}, []int{})
	assert.ErrorIs(t, err, types.ErrEmptyInput)

	// One empty, one not: a length mismatch, not empty input.
	_, err = lfsr.Agreement([]int{}, []int{1})
	assert.ErrorIs(t, err, types.ErrLengthMismatch)
}

func TestAgreementAgainstRegisterStream(t *testing.T) {
	r, err := lfsr.New(types.DemoSize, types.DemoState, types.DemoTaps())
	require.NoError(t, err)
	stream, err := r.Bits(15)
	require.NoError(t, err)

	// A register restarted from the same seed produces a perfectly agreeing
	// stream.
	require.NoError(t, r.SetState(types.DemoState))
	again, err := r.Bits(15)
	require.NoError(t, err)

	pct, err := lfsr.Agreement(stream, again)
	require.NoError(t, err)
	assert.Equal(t, 100.0, pct)
}
