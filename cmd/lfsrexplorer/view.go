package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	switch m.phase {
	case RunPhase:
		return m.viewRun()
	default:
		return m.viewConfig()
	}
}

func (m Model) viewConfig() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("lfsrexplorer · configure register"))
	b.WriteString("\n")

	labels := [fieldCount]string{"Size (bits)", "State (0b/0x/decimal)", "Taps (0 = LSB)"}
	var rows []string
	for i, in := range m.inputs {
		rows = append(rows, fmt.Sprintf("%s\n%s", labelStyle.Render(labels[i]), in.View()))
	}
	b.WriteString(paneStyle.Render(strings.Join(rows, "\n\n")))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: build register • ctrl+c: quit"))
	return b.String()
}

func (m Model) viewRun() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("lfsrexplorer · stepping register"))
	b.WriteString("\n")

	left := paneStyle.Render(m.renderRegister())
	right := paneStyle.Render(m.renderStream())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	case m.infoMsg != "":
		b.WriteString(infoStyle.Render(m.infoMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		"space/n: step • N: step 15 • p: period • r: reset • m: maximal taps • e: edit • q: quit"))
	return b.String()
}

// renderRegister shows the cells R_{n-1}..R_0 with the tapped positions
// marked and the output cell highlighted.
func (m Model) renderRegister() string {
	bits := m.reg.StateBits()
	taps := make(map[int]bool, m.reg.Size())
	for _, t := range m.reg.Taps() {
		taps[t] = true
	}

	var cells, marks []string
	for pos := m.reg.Size() - 1; pos >= 0; pos-- {
		cell := fmt.Sprintf("%d", bits[pos])
		if pos == 0 {
			cells = append(cells, outputBitStyle.Render(cell))
		} else {
			cells = append(cells, bitStyle.Render(cell))
		}
		if taps[pos] {
			marks = append(marks, "^")
		} else {
			marks = append(marks, " ")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d bits, taps %v\n\n",
		labelStyle.Render("Register:"), m.reg.Size(), m.reg.Taps())
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(strings.Join(marks, " ")))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s (%d)\n", labelStyle.Render("State:"), m.reg.StateString(), m.reg.State())
	if m.period > 0 {
		fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Period:"), m.period)
	}
	return b.String()
}

// renderStream shows the emitted bits, most recent last, wrapped in rows.
func (m Model) renderStream() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d bits\n\n", labelStyle.Render("Stream:"), len(m.stream))

	if len(m.stream) == 0 {
		b.WriteString(labelStyle.Render("(press space to step)"))
		return b.String()
	}

	const rowWidth = 32
	for i, bit := range m.stream {
		if i > 0 && i%rowWidth == 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d", bit)
	}
	return b.String()
}
