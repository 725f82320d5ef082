// Package uicolor defines the lipgloss styles the trace printer applies to
// each event kind, scaled down from a full light/dark-aware palette to what
// a batch CLI trace needs: one style per event kind, plus a --no-color
// escape hatch.
package uicolor

import "github.com/charmbracelet/lipgloss"

var (
	Assert = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	Fork   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	Closed = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	Open   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	Indent = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Plain disables every style in this package, for --no-color.
func Plain() {
	Assert = lipgloss.NewStyle()
	Fork = lipgloss.NewStyle()
	Closed = lipgloss.NewStyle()
	Open = lipgloss.NewStyle()
	Indent = lipgloss.NewStyle()
}
