package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/lfsrkit/internal/config"
	"github.com/joshuapare/lfsrkit/pkg/lfsr"
	"github.com/joshuapare/lfsrkit/pkg/types"
)

// Phase is the screen the explorer is showing
type Phase int

const (
	ConfigPhase Phase = iota // entering size/state/taps
	RunPhase                 // stepping a built register
)

// Indexes into Model.inputs
const (
	sizeField = iota
	stateField
	tapsField
	fieldCount
)

// Model is the main application model
type Model struct {
	phase  Phase
	keys   KeyMap
	inputs []textinput.Model
	focus  int

	reg     *lfsr.Register
	seed    uint64 // state the register was built/reset with
	stream  []int  // bits emitted since the last reset
	period  int    // 0 = not measured yet
	errMsg  string
	infoMsg string

	width  int
	height int
}

// NewModel builds the explorer starting at the configuration form,
// pre-filled with the classic 4-bit demo register.
func NewModel() Model {
	mk := func(placeholder, value string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.SetValue(value)
		ti.CharLimit = 72
		ti.Width = width
		return ti
	}

	inputs := make([]textinput.Model, fieldCount)
	inputs[sizeField] = mk("4", strconv.Itoa(types.DemoSize), 24)
	inputs[stateField] = mk("0b0110", fmt.Sprintf("0b%04b", types.DemoState), 24)
	inputs[tapsField] = mk("0,3", tapsString(types.DemoTaps()), 24)
	inputs[sizeField].Focus()

	return Model{
		phase:  ConfigPhase,
		keys:   DefaultKeyMap(),
		inputs: inputs,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// buildRegister parses the form fields and constructs the register.
func (m *Model) buildRegister() error {
	size, err := strconv.Atoi(strings.TrimSpace(m.inputs[sizeField].Value()))
	if err != nil {
		return fmt.Errorf("size: %q is not an integer", m.inputs[sizeField].Value())
	}
	state, err := config.ParseNumber(strings.TrimSpace(m.inputs[stateField].Value()))
	if err != nil {
		return fmt.Errorf("state: %w", err)
	}
	taps, err := parseTaps(m.inputs[tapsField].Value())
	if err != nil {
		return err
	}

	reg, err := lfsr.New(size, state, taps)
	if err != nil {
		return err
	}

	m.reg = reg
	m.seed = state
	m.stream = nil
	m.period = 0
	return nil
}

// parseTaps splits a comma- or space-separated tap list.
func parseTaps(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	taps := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("taps: %q is not an integer", f)
		}
		taps = append(taps, v)
	}
	return taps, nil
}

func tapsString(taps []int) string {
	parts := make([]string, len(taps))
	for i, t := range taps {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",")
}
