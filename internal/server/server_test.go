// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-list-keeper/internal/config"
	"github.com/MKhiriev/go-list-keeper/internal/handler"
	httphandler "github.com/MKhiriev/go-list-keeper/internal/handler/http"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/service"
)

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunUntilContextEnds(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: httphandler.NewHandler(&service.Services{}, config.App{}, logger.Nop()),
	}
	srv, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})

	hs := newHTTPServer(slow, config.Server{HTTPAddress: ":0", RequestTimeout: 20 * time.Millisecond}, logger.Nop())

	rr := httptest.NewRecorder()
	hs.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/lists", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "request timed out", rr.Body.String())
}

func TestNewHTTPServer_NoTimeout(t *testing.T) {
	router := http.NewServeMux()
	hs := newHTTPServer(router, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Equal(t, ":0", hs.server.Addr)
	assert.Equal(t, readHeaderTimeout, hs.server.ReadHeaderTimeout)
	assert.Same(t, router, hs.server.Handler)
}
