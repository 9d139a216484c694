// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles used to render a selection.
type Theme struct {
	Number  lipgloss.Style // option numbers
	Default lipgloss.Style // the default option line
	Prompt  lipgloss.Style
	Hint    lipgloss.Style // range and default hint after the prompt
	Error   lipgloss.Style
}

// NewTheme builds the default theme for w. Color support is detected
// on w itself, so output redirected to a file or pipe stays plain.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Number:  r.NewStyle().Foreground(lipgloss.Color("62")),
		Default: r.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Hint:    r.NewStyle().Foreground(lipgloss.Color("240")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// PlainTheme returns a theme without any styling.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Number: s, Default: s, Prompt: s, Hint: s, Error: s}
}
