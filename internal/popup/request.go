// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package popup provides the popup used by the HTTP API, where nobody can
// be asked interactively: the answer to every confirmation comes with the
// request, toasts go to the request log.
package popup

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/models"
)

// ConfirmHeader carries the answer to confirmations of a request.
const ConfirmHeader = "X-Confirm"

// Decision is the answer a request gives to confirmations.
type Decision int

const (
	// DecisionUnset declines: a client that did not answer did not agree.
	DecisionUnset Decision = iota
	DecisionYes
	DecisionNo
)

// ParseDecision reads "yes"/"no" (and the usual boolean spellings).
func ParseDecision(s string) Decision {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return DecisionYes
	case "no", "n", "false", "0":
		return DecisionNo
	default:
		return DecisionUnset
	}
}

// Request answers confirmations with a fixed decision and records what was
// asked and toasted, so the handler can report it back.
type Request struct {
	decision Decision

	mu     sync.Mutex
	asked  []models.Confirmation
	toasts []models.Toast
}

// NewRequest returns a popup answering every confirmation with d.
func NewRequest(d Decision) *Request {
	return &Request{decision: d}
}

// FromRequest builds the popup from the X-Confirm header of r.
func FromRequest(r *http.Request) *Request {
	return NewRequest(ParseDecision(r.Header.Get(ConfirmHeader)))
}

func (p *Request) Confirm(ctx context.Context, c models.Confirmation) bool {
	p.mu.Lock()
	p.asked = append(p.asked, c)
	p.mu.Unlock()

	ok := p.decision == DecisionYes
	logger.FromContext(ctx).Debug().
		Str("kind", string(c.Kind)).
		Str("subject", c.Subject).
		Int("count", c.Count).
		Bool("confirmed", ok).
		Msg("confirmation answered from request")
	return ok
}

func (p *Request) Toast(ctx context.Context, t models.Toast) {
	p.mu.Lock()
	p.toasts = append(p.toasts, t)
	p.mu.Unlock()

	log := logger.FromContext(ctx)
	switch t.Level {
	case models.ToastError:
		log.Error().Msg(t.Message)
	case models.ToastWarning:
		log.Warn().Msg(t.Message)
	default:
		log.Info().Msg(t.Message)
	}
}

// Asked returns the confirmations requested so far.
func (p *Request) Asked() []models.Confirmation {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Confirmation(nil), p.asked...)
}

// Toasts returns the toasts shown so far.
func (p *Request) Toasts() []models.Toast {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Toast(nil), p.toasts...)
}

// Declined reports whether a confirmation was asked and not given.
func (p *Request) Declined() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.asked) > 0 && p.decision != DecisionYes
}
