// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-list-keeper/models"
)

// confirmModel is the yes/no dialog. "No" is focused initially, so enter
// alone never confirms a destructive action.
type confirmModel struct {
	question string
	yes      bool
	done     bool
}

func newConfirmModel(c models.Confirmation) confirmModel {
	return confirmModel{question: question(c)}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.yes, m.done = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.yes, m.done = false, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.left):
		m.yes = true
	case key.Matches(keyMsg, keys.right):
		m.yes = false
	case key.Matches(keyMsg, keys.tab):
		m.yes = !m.yes
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	yes, no := buttonStyle.Render("Yes"), activeButtonStyle.Render("No")
	if m.yes {
		yes, no = activeButtonStyle.Render("Yes"), buttonStyle.Render("No")
	}

	content := titleStyle.Render(m.question) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no) + "\n\n" +
		helpStyle.Render("y yes │ n no │ ←/→ select │ enter confirm")
	return overlayBoxStyle.Render(content)
}

// question phrases c for the dialog.
func question(c models.Confirmation) string {
	subject := "this"
	if c.Subject != "" {
		subject = fmt.Sprintf("%q", c.Subject)
	}

	switch c.Kind {
	case models.ConfirmDeleteList:
		if c.Count > 1 {
			return fmt.Sprintf("Delete %d lists?", c.Count)
		}
		return "Delete list " + subject + "?"
	case models.ConfirmDeleteListitem:
		if c.Count > 1 {
			return fmt.Sprintf("Delete %d items?", c.Count)
		}
		return "Delete item " + subject + "?"
	case models.ConfirmEmptyList:
		return fmt.Sprintf("Remove %s from list %s?", plural(c.Count, "item"), subject)
	case models.ConfirmEraseList:
		return "Erase list " + subject + " permanently?"
	case models.ConfirmEraseListitem:
		return "Erase item " + subject + " permanently?"
	case models.ConfirmWipeTrash:
		return fmt.Sprintf("Erase %s from the trash permanently?", plural(c.Count, "list"))
	case models.ConfirmWipeItemsTrash:
		return fmt.Sprintf("Erase %s from the trash of %s permanently?", plural(c.Count, "item"), subject)
	}

	return "Continue with " + strings.ReplaceAll(string(c.Kind), "_", " ") + "?"
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
