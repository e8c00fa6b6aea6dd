// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-list-keeper/internal/config"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/utils"
	"github.com/MKhiriev/go-list-keeper/models"
)

// BridgeSubject is the "sub" claim of tokens the application signs for the
// bridge.
const BridgeSubject = "go-list-keeper"

const (
	messagesPath = "/v1/messages"
	devicesPath  = "/v1/devices"
)

// tokens are re-signed this long before they expire
const tokenRefreshMargin = 30 * time.Second

type httpDeviceTransport struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	appCfg config.App

	mu    sync.Mutex
	token models.BridgeToken

	logger *logger.Logger
}

// NewHTTPDeviceTransport constructs the HTTP implementation of
// [DeviceTransport]. Calls are throttled to adapterCfg.RateLimit per second
// with adapterCfg.Burst and authenticated with a bearer token signed with
// appCfg.TokenSignKey.
//
// Returns an error if adapterCfg.BridgeURL cannot be parsed as a URL.
func NewHTTPDeviceTransport(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (DeviceTransport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BridgeURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter bridge url: %w", err)
	}

	return &httpDeviceTransport{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		limiter: rate.NewLimiter(rate.Limit(adapterCfg.RateLimit), adapterCfg.Burst),
		appCfg:  appCfg,
		logger:  log,
	}, nil
}

// Send implements [DeviceTransport] with POST /v1/messages.
func (h *httpDeviceTransport) Send(ctx context.Context, env models.DeviceEnvelope) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetBody(env).Post(messagesPath)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpDeviceTransport.Send").
			Str("device_id", env.DeviceID).
			Msg("bridge request failed")
		return fmt.Errorf("send request: %w", err)
	}

	return mapHTTPError(resp)
}

// Devices implements [DeviceTransport] with GET /v1/devices.
func (h *httpDeviceTransport) Devices(ctx context.Context) ([]models.Device, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(devicesPath)
	if err != nil {
		return nil, fmt.Errorf("devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var devices []models.Device
	if err = json.Unmarshal(resp.Body(), &devices); err != nil {
		return nil, fmt.Errorf("decode devices response: %w", err)
	}
	return devices, nil
}

func (h *httpDeviceTransport) authedRequest(ctx context.Context) (*resty.Request, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	token, err := h.bearer()
	if err != nil {
		return nil, err
	}

	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(token)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req, nil
}

// bearer returns a cached token, signing a new one when the cached one is
// close to expiry.
func (h *httpDeviceTransport) bearer() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token.SignedString != "" && h.token.ExpiresAt != nil &&
		time.Until(h.token.ExpiresAt.Time) > tokenRefreshMargin {
		return h.token.SignedString, nil
	}

	token, err := utils.GenerateBridgeToken(h.appCfg.TokenIssuer, BridgeSubject, h.appCfg.TokenDuration, h.appCfg.TokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigningToken, err)
	}
	h.token = token
	return token.SignedString, nil
}
