// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared across the application: typed
// context keys, JSON response writing, the resty client wrapper, bridge
// token signing and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values stored by this
// package never collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// TraceIDCtxKey stores the request trace id.
	TraceIDCtxKey = contextKey("traceID")
	// BridgeIDCtxKey stores the id of the device bridge that authenticated
	// an inbound webhook.
	BridgeIDCtxKey = contextKey("bridgeID")
)

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// TraceIDHeader carries the trace id between the API, its callers and the
// device bridge.
const TraceIDHeader = "X-Trace-ID"

// GetTraceIDFromContext returns the trace id stored by [WithTraceID].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}

// WithBridgeID returns a copy of ctx carrying bridgeID.
func WithBridgeID(ctx context.Context, bridgeID string) context.Context {
	return context.WithValue(ctx, BridgeIDCtxKey, bridgeID)
}

// GetBridgeIDFromContext returns the bridge id stored by [WithBridgeID].
//
//	bridgeID, ok := utils.GetBridgeIDFromContext(r.Context())
//	if !ok {
//	    // webhook was not authenticated
//	}
func GetBridgeIDFromContext(ctx context.Context) (string, bool) {
	bridgeID, ok := ctx.Value(BridgeIDCtxKey).(string)
	return bridgeID, ok && bridgeID != ""
}
