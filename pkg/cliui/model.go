// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 2, 4)

// model is the bubbletea model behind ListSelect.
type model struct {
	list list.Model
	// index is the 1-based chosen position, 0 while nothing is chosen.
	index    int
	quitting bool
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if _, ok := m.list.SelectedItem().(item); ok {
				m.index = m.list.Index() + 1
			}
			return m, tea.Quit
		}

		// A single digit picks the option with that number directly.
		if r := msg.Runes; msg.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
			if n := int(r[0] - '0'); n <= len(m.list.Items()) {
				m.list.Select(n - 1)
				m.index = n
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if m.index > 0 {
		choice, _ := m.list.SelectedItem().(item)
		return quitTextStyle.Render(fmt.Sprintf("Selected %d: %s", m.index, choice))
	}
	if m.quitting {
		return quitTextStyle.Render("Selection cancelled.")
	}

	return "\n" + m.list.View()
}
