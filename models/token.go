// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// BridgeToken is a signed token exchanged with the device bridge. The
// bridge presents it on inbound webhooks and the adapter sends it on
// outbound requests.
//
// The "sub" claim names the bridge instance that owns the token.
type BridgeToken struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`
}

// BridgeID returns the "sub" claim.
func (t *BridgeToken) BridgeID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting bridge id from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting bridge id from token: empty subject")
	}
	return sub, nil
}

// String implements fmt.Stringer.
func (t *BridgeToken) String() string {
	return t.SignedString
}
