package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TestHelper drives the model the way the bubbletea runtime would,
// keeping the evolving model between messages.
type TestHelper struct {
	model Model
}

// NewTestHelper returns a helper wrapping a fresh model.
func NewTestHelper() *TestHelper {
	return &TestHelper{model: NewModel()}
}

// GetModel returns the current model state.
func (h *TestHelper) GetModel() Model {
	return h.model
}

// Send delivers an arbitrary message to the model.
func (h *TestHelper) Send(msg tea.Msg) {
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
}

// SendWindowSize delivers a terminal resize.
func (h *TestHelper) SendWindowSize(width, height int) {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// SendKeyRune delivers a single printable key press.
func (h *TestHelper) SendKeyRune(r rune) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// SendKey delivers a named key press (enter, tab, ...).
func (h *TestHelper) SendKey(keyType tea.KeyType) {
	h.Send(tea.KeyMsg{Type: keyType})
}

// SetField replaces the value of a form field directly.
func (h *TestHelper) SetField(field int, value string) {
	h.model.inputs[field].SetValue(value)
}
