// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-list-keeper/internal/config"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/go-list-keeper/internal/service"
	"github.com/MKhiriev/go-list-keeper/internal/validators"
	"github.com/MKhiriev/go-list-keeper/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-list-keeper"
)

var testNow = time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)

// apiHarness wires a Handler to service mocks and serves its router.
type apiHarness struct {
	lists   *servicemock.MockListsService
	devices *servicemock.MockDeviceService
	appInfo *servicemock.MockAppInfoService

	handler *Handler
	router  http.Handler
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	a := &apiHarness{
		lists:   servicemock.NewMockListsService(ctrl),
		devices: servicemock.NewMockDeviceService(ctrl),
		appInfo: servicemock.NewMockAppInfoService(ctrl),
	}
	a.handler = &Handler{
		services: &service.Services{
			Lists:   a.lists,
			Devices: a.devices,
			AppInfo: a.appInfo,
		},
		validator:    validators.NewListValidator(),
		tokenSignKey: testSignKey,
		tokenIssuer:  testIssuer,
		now:          func() time.Time { return testNow },
		logger:       logger.Nop(),
	}
	a.router = a.handler.Init()
	return a
}

// do sends a request through the router. headers are key/value pairs.
func (a *apiHarness) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func testList(id, name string, items ...string) *models.List {
	list := models.ListFromRecord(models.ListRecord{ID: id, Name: name, Created: testNow})
	loaded := make([]*models.Listitem, 0, len(items))
	for i, text := range items {
		loaded = append(loaded, models.ListitemFromRecord(models.ListitemRecord{
			ID:      id + "-item-" + text,
			ListID:  id,
			Item:    text,
			Order:   i,
			Created: testNow,
		}))
	}
	list.LoadItems(loaded)
	return list
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	h := NewHandler(services, config.App{TokenSignKey: "k", TokenIssuer: "iss"}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, "k", h.tokenSignKey)
	assert.Equal(t, "iss", h.tokenIssuer)
	assert.NotNil(t, h.validator)
	assert.NotNil(t, h.now)
}

func TestInit_UnknownRouteAndWrongMethod(t *testing.T) {
	a := newAPIHarness(t)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"unknown path", http.MethodGet, "/api/unknown"},
		{"unknown nested path", http.MethodGet, "/api/lists/l1/unknown"},
		{"wrong method on static route", http.MethodPatch, "/api/trash"},
		{"wrong method on param route", http.MethodPatch, "/api/lists/l1"},
		{"GET on webhook", http.MethodGet, "/api/device/messages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := a.do(tt.method, tt.target, "")
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"Not Found"}`, rr.Body.String())
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	a := newAPIHarness(t)
	a.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.0").Times(2)

	rr := a.do(http.MethodGet, "/api/version", "")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	rr = a.do(http.MethodGet, "/api/version", "", traceIDHeader, "trace-42")
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}

func TestGetVersion(t *testing.T) {
	a := newAPIHarness(t)
	a.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.0")

	rr := a.do(http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.0", rr.Body.String())
}

func TestGetVersion_Gzipped(t *testing.T) {
	a := newAPIHarness(t)
	a.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.0")

	rr := a.do(http.MethodGet, "/api/version", "", "Accept-Encoding", "gzip")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "1.2.0", gunzip(t, rr.Body))
}
