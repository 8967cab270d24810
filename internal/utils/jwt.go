package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/patas-felizes/backend/models"
)

// IssueBasicToken creates a signed HMAC-SHA256 JWT for a caller that
// authenticated with Basic credentials.
//
// The token includes the following claims:
//   - Audience  (aud): the service the token is intended for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - username:        the authenticated username
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func IssueBasicToken(username, audience string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if username == "" || audience == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	claims := &models.TokenClaims{
		RegisteredClaims: registeredClaims(audience, tokenDuration),
		Username:         username,
	}

	return signToken(claims, signKey)
}

// IssueSessionToken creates a signed HMAC-SHA256 JWT for a registered user.
// Identical to [IssueBasicToken] except that the subject is carried in the
// user_id claim instead of username.
func IssueSessionToken(userID int64, audience string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if userID == 0 || audience == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	claims := &models.TokenClaims{
		RegisteredClaims: registeredClaims(audience, tokenDuration),
		UserID:           userID,
	}

	return signToken(claims, signKey)
}

// ValidateAndParseToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key, with the signing
//     algorithm pinned to HMAC-SHA256
//   - Audience (aud) claim check against the provided audience
//   - Expiration (exp) claim check
//   - Presence of a subject claim (username or user_id)
//
// Returns the parsed token with its decoded claim set, or an error when the
// token is forged, expired, issued for another audience or carries no
// subject.
func ValidateAndParseToken(tokenString, signKey, audience string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithAudience(audience), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" && claims.UserID == 0 {
		return models.Token{}, errors.New("token carries no subject")
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the raw token from an Authorization header of
// the form "Bearer <token>". The scheme must be exactly "Bearer".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func registeredClaims(audience string, tokenDuration time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func signToken(claims *models.TokenClaims, signKey string) (models.Token, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}
