package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/lfsrkit/cmd/lfsrexplorer/logger"
	"github.com/joshuapare/lfsrkit/pkg/lfsr"
	"github.com/joshuapare/lfsrkit/pkg/types"
)

// regLog returns a logger annotated with r's current configuration.
func regLog(r *lfsr.Register) *slog.Logger {
	return logger.Register(r.Size(), fmt.Sprint(r.Taps()), r.StateString())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (m.phase == RunPhase || msg.String() == "ctrl+c") {
			return m, tea.Quit
		}
		switch m.phase {
		case ConfigPhase:
			return m.updateConfig(msg)
		case RunPhase:
			return m.updateRun(msg)
		}
	}
	return m, nil
}

func (m Model) updateConfig(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Apply):
		if err := m.buildRegister(); err != nil {
			m.errMsg = err.Error()
			logger.Warn("rejected register configuration", "error", err)
			return m, nil
		}
		regLog(m.reg).Info("built register")
		m.errMsg = ""
		m.infoMsg = ""
		m.phase = RunPhase
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m.moveFocus(1)

	case key.Matches(msg, m.keys.PrevField):
		return m.moveFocus(-1)
	}

	// Everything else is text entry for the focused field.
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m, m.inputs[m.focus].Focus()
}

func (m Model) updateRun(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Step):
		m.step(1)

	case key.Matches(msg, m.keys.Step15):
		m.step(15)

	case key.Matches(msg, m.keys.Period):
		p, err := m.reg.Period()
		if err != nil {
			m.setStepError(err)
			return m, nil
		}
		m.period = p
		m.infoMsg = fmt.Sprintf("period %d measured, register restored", p)
		regLog(m.reg).Info("measured period", "period", p)

	case key.Matches(msg, m.keys.Reset):
		if err := m.reg.SetState(m.seed); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.stream = nil
		m.errMsg = ""
		m.infoMsg = "reset to seed state"

	case key.Matches(msg, m.keys.Presets):
		if taps, ok := lfsr.MaximalTaps(m.reg.Size()); ok {
			if err := m.reg.SetTaps(taps); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.inputs[tapsField].SetValue(tapsString(taps))
			m.period = 0
			m.infoMsg = fmt.Sprintf("taps set to maximal %v", taps)
		} else {
			m.infoMsg = fmt.Sprintf("no maximal tap set recorded for size %d", m.reg.Size())
		}

	case key.Matches(msg, m.keys.Edit):
		m.phase = ConfigPhase
		m.errMsg = ""
		m.infoMsg = ""
		return m, m.inputs[m.focus].Focus()
	}
	return m, nil
}

// step advances the register n times, collecting emitted bits.
func (m *Model) step(n int) {
	for i := 0; i < n; i++ {
		b, err := m.reg.NextBit()
		if err != nil {
			m.setStepError(err)
			return
		}
		m.stream = append(m.stream, b)
	}
	m.errMsg = ""
	m.infoMsg = ""
}

func (m *Model) setStepError(err error) {
	if errors.Is(err, types.ErrDegenerateCycle) {
		m.errMsg = "degenerate cycle: this tap configuration drives the state to zero"
	} else {
		m.errMsg = err.Error()
	}
	regLog(m.reg).Warn("step failed", "error", err)
}
