// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Renderer draws the selector on the diagnostic stream.
type Renderer interface {
	// RenderOptions prints one numbered line per option. def is the
	// 1-based default position, or 0 when there is none.
	RenderOptions(w io.Writer, options []string, def int, defLabel string) error
	// ReserveLines keeps n blank lines below the current position.
	ReserveLines(w io.Writer, n int) error
	RenderPrompt(w io.Writer, prompt string, count, def int) error
	RenderError(w io.Writer, msg string) error
}

// NewRenderer returns a TerminalRenderer when f is a terminal and a
// PlainRenderer otherwise.
func NewRenderer(f *os.File) Renderer {
	if term.IsTerminal(int(f.Fd())) {
		return &TerminalRenderer{Theme: NewTheme(f)}
	}
	return &PlainRenderer{}
}

// TerminalRenderer styles its output and moves the cursor for bottom spacing.
type TerminalRenderer struct {
	Theme Theme
}

func (r *TerminalRenderer) RenderOptions(w io.Writer, options []string, def int, defLabel string) error {
	return renderOptions(w, r.Theme, options, def, defLabel)
}

func (r *TerminalRenderer) ReserveLines(w io.Writer, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Repeat("\n", n)+ansi.CursorUp(n))
	return err
}

func (r *TerminalRenderer) RenderPrompt(w io.Writer, prompt string, count, def int) error {
	return renderPrompt(w, r.Theme, prompt, count, def)
}

func (r *TerminalRenderer) RenderError(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, r.Theme.Error.Render(msg))
	return err
}

// PlainRenderer writes unstyled text and never moves the cursor.
type PlainRenderer struct{}

func (r *PlainRenderer) RenderOptions(w io.Writer, options []string, def int, defLabel string) error {
	return renderOptions(w, PlainTheme(), options, def, defLabel)
}

func (r *PlainRenderer) ReserveLines(io.Writer, int) error {
	return nil
}

func (r *PlainRenderer) RenderPrompt(w io.Writer, prompt string, count, def int) error {
	return renderPrompt(w, PlainTheme(), prompt, count, def)
}

func (r *PlainRenderer) RenderError(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func renderOptions(w io.Writer, t Theme, options []string, def int, defLabel string) error {
	for i, option := range options {
		line := fmt.Sprintf("%s %s", t.Number.Render(fmt.Sprintf("%d)", i+1)), option)
		if i+1 == def {
			line = t.Default.Render(fmt.Sprintf("%d) %s %s", i+1, option, defLabel))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderPrompt(w io.Writer, t Theme, prompt string, count, def int) error {
	hint := fmt.Sprintf("[1-%d]", count)
	if def > 0 {
		hint = fmt.Sprintf("[1-%d, default %d]", count, def)
	}
	if prompt == "" {
		_, err := fmt.Fprintf(w, "%s: ", t.Hint.Render(hint))
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s: ", t.Prompt.Render(prompt), t.Hint.Render(hint))
	return err
}
