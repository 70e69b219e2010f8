// SPDX-License-Identifier: MPL-2.0

package tui

import "github.com/charmbracelet/lipgloss"

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#06B6D4")).
	Padding(1, 2)

// Panel wraps content in a rounded border box.
func Panel(content string) string {
	return panelStyle.Render(content)
}
