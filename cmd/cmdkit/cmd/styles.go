package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	NameStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)
)

func renderError(msg string) string {
	return ErrorMessageStyle.Render("Error: " + msg)
}

// renderTable lays out rows in left-aligned columns. The first row is the
// header. styles[i] renders column i of the body rows.
func renderTable(rows [][]string, styles []lipgloss.Style) string {
	if len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := HeaderStyle
			if r > 0 {
				style = styles[i]
			}
			if i < len(row)-1 {
				style = style.Width(widths[i] + 2)
			}
			cells[i] = style.Render(cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}
