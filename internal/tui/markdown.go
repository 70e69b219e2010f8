// SPDX-License-Identifier: MPL-2.0

package tui

import "github.com/charmbracelet/glamour"

// RenderMarkdown renders markdown for the terminal. Width 0 disables word
// wrapping.
func RenderMarkdown(content string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
