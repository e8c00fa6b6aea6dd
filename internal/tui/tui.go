// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/models"
)

// Terminal is the popup and progress reporter of the command-line client.
// Confirmations run a small bubbletea program on the terminal; toasts and
// progress are printed as styled lines.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	logger *logger.Logger

	// run executes the confirmation program; replaced in tests.
	run func(ctx context.Context, m tea.Model) (tea.Model, error)

	mu       sync.Mutex
	progress int
}

func New(in io.Reader, out io.Writer, log *logger.Logger) *Terminal {
	t := &Terminal{in: in, out: out, logger: log}
	t.run = t.runProgram
	return t
}

// Confirm asks the question described by c. Any failure to run the dialog
// counts as a "no".
func (t *Terminal) Confirm(ctx context.Context, c models.Confirmation) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	final, err := t.run(ctx, newConfirmModel(c))
	if err != nil {
		t.logger.Err(err).Str("func", "Terminal.Confirm").Str("kind", string(c.Kind)).Msg("confirmation dialog failed")
		return false
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false
	}
	t.logger.Debug().Str("kind", string(c.Kind)).Bool("confirmed", result.yes).Msg("confirmation answered")
	return result.done && result.yes
}

func (t *Terminal) Toast(_ context.Context, toast models.Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, renderToast(toast))
}

// Begin prints a progress line when the outermost operation starts.
func (t *Terminal) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.progress == 0 {
		fmt.Fprintln(t.out, helpStyle.Render("working..."))
	}
	t.progress++
}

func (t *Terminal) End() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.progress > 0 {
		t.progress--
	}
}

func (t *Terminal) runProgram(ctx context.Context, m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
}

func renderToast(toast models.Toast) string {
	style, ok := toastStyles[toast.Level]
	if !ok {
		return toast.Message
	}
	return style.Render(toastMarker(toast.Level) + " " + toast.Message)
}

func toastMarker(level models.ToastLevel) string {
	switch level {
	case models.ToastSuccess:
		return "✓"
	case models.ToastWarning:
		return "!"
	default:
		return "✗"
	}
}
