package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// TestApplyBuildsDemoRegister tests building the pre-filled demo register
func TestApplyBuildsDemoRegister(t *testing.T) {
	helper := NewTestHelper()
	helper.SendWindowSize(120, 40)

	model := helper.GetModel()
	if model.phase != ConfigPhase {
		t.Fatal("explorer should start at the configuration form")
	}

	helper.SendKey(tea.KeyEnter)

	model = helper.GetModel()
	if model.phase != RunPhase {
		t.Fatalf("enter should build the register, got error %q", model.errMsg)
	}
	if model.reg.Size() != 4 {
		t.Errorf("expected the 4-bit demo register, got size %d", model.reg.Size())
	}
	if model.reg.State() != 0b0110 {
		t.Errorf("expected seed 0110, got %04b", model.reg.State())
	}
}

// TestApplyRejectsZeroState tests inline validation of a zero seed
func TestApplyRejectsZeroState(t *testing.T) {
	helper := NewTestHelper()
	helper.SetField(stateField, "0")

	helper.SendKey(tea.KeyEnter)

	model := helper.GetModel()
	if model.phase != ConfigPhase {
		t.Error("a rejected configuration must stay on the form")
	}
	if model.errMsg == "" {
		t.Error("expected an inline error message for a zero seed")
	}
}

// TestStepCollectsStream tests stepping and the emitted stream
func TestStepCollectsStream(t *testing.T) {
	helper := NewTestHelper()
	helper.SendKey(tea.KeyEnter)

	for i := 0; i < 3; i++ {
		helper.SendKeyRune('n')
	}

	model := helper.GetModel()
	if len(model.stream) != 3 {
		t.Fatalf("expected 3 emitted bits, got %d", len(model.stream))
	}
	// Demo register emits 0, 1, 1 first.
	want := []int{0, 1, 1}
	for i, b := range want {
		if model.stream[i] != b {
			t.Errorf("bit %d: got %d want %d", i, model.stream[i], b)
		}
	}
}

// TestBatchStepAndReset tests N (step 15) and r (reset)
func TestBatchStepAndReset(t *testing.T) {
	helper := NewTestHelper()
	helper.SendKey(tea.KeyEnter)

	helper.SendKeyRune('N')
	model := helper.GetModel()
	if len(model.stream) != 15 {
		t.Fatalf("expected 15 emitted bits, got %d", len(model.stream))
	}
	if model.reg.State() != 0b0110 {
		t.Errorf("15 steps of the maximal demo register should return to the seed")
	}

	helper.SendKeyRune('r')
	model = helper.GetModel()
	if len(model.stream) != 0 {
		t.Error("reset should clear the stream")
	}
	if model.reg.State() != 0b0110 {
		t.Error("reset should restore the seed state")
	}
}

// TestPeriodMeasurement tests the p key
func TestPeriodMeasurement(t *testing.T) {
	helper := NewTestHelper()
	helper.SendKey(tea.KeyEnter)

	helper.SendKeyRune('p')

	model := helper.GetModel()
	if model.period != 15 {
		t.Errorf("expected period 15, got %d", model.period)
	}
	if model.reg.State() != 0b0110 {
		t.Error("period measurement must restore the register state")
	}
}

// TestDegenerateStepShowsError tests stepping a register into the zero state
func TestDegenerateStepShowsError(t *testing.T) {
	helper := NewTestHelper()
	helper.SetField(sizeField, "4")
	helper.SetField(stateField, "1")
	helper.SetField(tapsField, "3")
	helper.SendKey(tea.KeyEnter)

	model := helper.GetModel()
	if model.phase != RunPhase {
		t.Fatalf("configuration should be accepted, got %q", model.errMsg)
	}

	helper.SendKey(tea.KeySpace)

	model = helper.GetModel()
	if !strings.Contains(model.errMsg, "degenerate") {
		t.Errorf("expected a degenerate-cycle message, got %q", model.errMsg)
	}
	if model.reg.State() != 1 {
		t.Error("failed step must leave the state untouched")
	}
}

// TestMaximalTapsKey tests the m key swapping in a maximal tap set
func TestMaximalTapsKey(t *testing.T) {
	helper := NewTestHelper()
	helper.SetField(tapsField, "2,3")
	helper.SendKey(tea.KeyEnter)

	helper.SendKeyRune('m')

	model := helper.GetModel()
	taps := model.reg.Taps()
	if len(taps) != 2 || taps[0] != 0 || taps[1] != 3 {
		t.Errorf("expected maximal taps [0 3] for size 4, got %v", taps)
	}
}

// TestEditReturnsToForm tests the e key
func TestEditReturnsToForm(t *testing.T) {
	helper := NewTestHelper()
	helper.SendKey(tea.KeyEnter)
	helper.SendKeyRune('e')

	model := helper.GetModel()
	if model.phase != ConfigPhase {
		t.Error("e should return to the configuration form")
	}
}

// TestViewRendersWithoutRegister ensures View never panics pre-build
func TestViewRendersWithoutRegister(t *testing.T) {
	helper := NewTestHelper()
	helper.SendWindowSize(80, 24)

	view := helper.GetModel().View()
	if !strings.Contains(view, "configure register") {
		t.Error("config view should show the form header")
	}

	helper.SendKey(tea.KeyEnter)
	view = helper.GetModel().View()
	if !strings.Contains(view, "stepping register") {
		t.Error("run view should show the stepping header")
	}
}
