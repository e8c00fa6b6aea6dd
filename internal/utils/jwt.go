// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-list-keeper/models"
)

// ErrInvalidAuthorizationHeader is returned when the Authorization header is
// not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateBridgeToken creates a signed HMAC-SHA256 token for the device
// bridge identified by bridgeID.
//
// The token carries the standard claims iss, sub (the bridge id), iat and
// exp. All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateBridgeToken("go-list-keeper", "watch-bridge", time.Hour, "secret")
func GenerateBridgeToken(issuer, bridgeID string, tokenDuration time.Duration, signKey string) (models.BridgeToken, error) {
	if issuer == "" || bridgeID == "" || tokenDuration <= 0 || signKey == "" {
		return models.BridgeToken{}, errors.New("invalid params for generating bridge token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   bridgeID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.BridgeToken{}, fmt.Errorf("error occurred during singing bridge token: %w", err)
	}

	return models.BridgeToken{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseBridgeToken verifies the signature, the issuer and the
// expiry of tokenString and returns its claims. Only HMAC signing methods
// are accepted.
func ValidateAndParseBridgeToken(tokenString, tokenSignKey, tokenIssuer string) (models.BridgeToken, error) {
	claims := &models.BridgeToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.BridgeToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	if _, err = claims.BridgeID(); err != nil {
		return models.BridgeToken{}, err
	}

	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
