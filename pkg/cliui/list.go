// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 20
	listHeight   = 14
)

var (
	titleStyle      = lipgloss.NewStyle().MarginLeft(2)
	paginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	itemStyle       = lipgloss.NewStyle().PaddingLeft(4)
	cursorStyle     = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
)

type item string

func (i item) FilterValue() string { return "" }

// itemDelegate renders an option as "n) label", annotating the default.
type itemDelegate struct {
	def      int
	defLabel string
}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d) %s", index+1, i)
	if index+1 == d.def {
		str += " " + d.defLabel
	}

	if index == m.Index() {
		fmt.Fprint(w, cursorStyle.Render("> "+str))
		return
	}
	fmt.Fprint(w, itemStyle.Render(str))
}

func newListModel(req Request) *model {
	items := make([]list.Item, 0, len(req.Options))
	for _, option := range req.Options {
		items = append(items, item(option))
	}

	l := list.New(items, itemDelegate{def: req.defaultPos(), defLabel: req.label()}, defaultWidth, listHeight)
	l.Title = req.Prompt
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle
	if def := req.defaultPos(); def > 0 {
		l.Select(def - 1)
	}

	return &model{list: l}
}

// ListSelect is the arrow-key alternative to Select: the options are shown
// as a list on stderr, the cursor starts on the default and Enter picks
// the highlighted option. q, Esc and Ctrl+C return ErrCancelled.
//
// Input is read from ttyPath, or from the controlling terminal when empty.
func ListSelect(req Request, ttyPath string) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	tty, err := OpenTTY(ttyPath)
	if err != nil {
		return Result{}, err
	}
	defer tty.Close()

	m := newListModel(req)
	if _, err := tea.NewProgram(m, tea.WithInput(tty), tea.WithOutput(os.Stderr)).Run(); err != nil {
		return Result{}, fmt.Errorf("error selecting from CLI menu: %w", err)
	}

	if m.quitting || m.index == 0 {
		return Result{}, ErrCancelled
	}
	return req.result(m.index), nil
}
