package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patas-felizes/backend/internal/service"
	"github.com/patas-felizes/backend/internal/utils"
	"github.com/patas-felizes/backend/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/animals", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidBearerToken,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidBearerToken,
		},
		{
			name:    "non-Bearer scheme rejected",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrInvalidBearerToken,
		},
		{
			name:    "lowercase scheme rejected",
			header:  "bearer my-jwt-token",
			wantErr: ErrInvalidBearerToken,
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrInvalidBearerToken,
		},
		{
			name:    "extra parts rejected",
			header:  "Bearer token extra-part",
			wantErr: ErrInvalidBearerToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	validToken := models.Token{Claims: &models.TokenClaims{UserID: 42}}

	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		expectedBody   string
		nextCalled     bool
		wantIdentity   models.Identity
	}{
		{
			name:           "empty Authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"data":{},"message":"token is missing"}`,
			nextCalled:     false,
		},
		{
			name:           "invalid header format (no space)",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Token is invalid","error":"Invalid Bearer token"}`,
			nextCalled:     false,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Token is invalid","error":"Invalid Bearer token"}`,
			nextCalled:     false,
		},
		{
			name:       "valid token: next called, identity in context",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return validToken, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantIdentity:   models.Identity{UserID: 42},
		},
		{
			name:       "expired or invalid token",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"token is invalid or expired"}`,
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authSvc service.AuthService
			if tt.parseTokenFn != nil {
				authSvc = &mockAuthService{parseTokenFn: tt.parseTokenFn}
			} else {
				// parseTokenFn must not be reached: the header never parses
				authSvc = &mockAuthService{parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}}
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			var capturedIdentity any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedIdentity = r.Context().Value(utils.IdentityCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			if tt.nextCalled && !tt.wantIdentity.IsZero() {
				assert.Equal(t, tt.wantIdentity, capturedIdentity)
			}
		})
	}
}
