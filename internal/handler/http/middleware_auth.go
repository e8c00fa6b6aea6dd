// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-list-keeper/internal/app"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/utils"
)

// bridgeAuth admits webhook calls signed by the device bridge.
//
// The "Authorization: Bearer <token>" header must carry a token signed with
// the configured key and issuer. The bridge id of the token is stored in
// the request context under [utils.BridgeIDCtxKey]. Everything else is
// rejected with 401 Unauthorized.
func (h *Handler) bridgeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.tokenSignKey == "" {
			log.Err(ErrBridgeAuthDisabled).Str("func", "*Handler.bridgeAuth").Send()
			utils.WriteError(w, ErrBridgeAuthDisabled.Error(), http.StatusUnauthorized)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.bridgeAuth").Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.bridgeAuth").Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseBridgeToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Str("func", "*Handler.bridgeAuth").Msg("bridge token rejected")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		bridgeID, err := token.BridgeID()
		if err != nil {
			log.Err(err).Str("func", "*Handler.bridgeAuth").Msg("bridge token has no subject")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithBridgeID(r.Context(), bridgeID)))
	})
}
