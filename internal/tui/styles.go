// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-list-keeper/models"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	buttonStyle       = lipgloss.NewStyle().Padding(0, 2)
	activeButtonStyle = buttonStyle.Reverse(true).Bold(true)

	toastStyles = map[models.ToastLevel]lipgloss.Style{
		models.ToastSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		models.ToastWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		models.ToastError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)
