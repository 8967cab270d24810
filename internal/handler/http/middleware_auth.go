package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication on
// every shelter resource route.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], and — on
// success — stores the resolved caller identity in the request context
// under [utils.IdentityCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases, each with the JSON body the mobile client expects:
//   - The "Authorization" header is absent:
//     {"message": "token is missing", "data": {}}
//   - The header does not carry a "Bearer <token>" value:
//     {"message": "Token is invalid", "error": "Invalid Bearer token"}
//   - The token is expired, forged, or issued for another audience:
//     {"message": "token is invalid or expired"}
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, map[string]any{
				"message": "token is missing",
				"data":    map[string]any{},
			}, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, map[string]string{
				"message": "Token is invalid",
				"error":   ErrInvalidBearerToken.Error(),
			}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, map[string]string{
				"message": "token is invalid or expired",
			}, http.StatusUnauthorized)
			return
		}

		// Store the resolved identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, token.Identity())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme must be exactly "Bearer"; any other scheme, a missing token,
// or extra parts yield [ErrInvalidBearerToken].
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 {
		return "", ErrInvalidBearerToken
	}

	if strings.TrimSpace(parts[0]) != "Bearer" {
		return "", ErrInvalidBearerToken
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrInvalidBearerToken
	}

	return tokenString, nil
}
