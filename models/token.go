package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every token issued by this
// service. The two authentication flows populate different subject fields:
// the Basic-credential flow sets Username, the registered-user flow sets
// UserID. Both always carry the audience and expiry claims.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Username is the subject of an ad-hoc token issued from Basic
	// credentials. Empty for registered-user tokens.
	Username string `json:"username,omitempty"`

	// UserID is the subject of a registered-user token. Zero for ad-hoc
	// tokens.
	UserID int64 `json:"user_id,omitempty"`
}

// Token wraps an issued or parsed JWT with convenience accessors.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in HTTP headers. Claims is the decoded claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims *TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Identity returns the caller identity resolved from the claims: the
// username for ad-hoc tokens, the decimal user id for registered-user
// tokens. Empty when neither subject field is set.
func (t *Token) Identity() Identity {
	if t.Claims == nil {
		return Identity{}
	}

	return Identity{
		Username: t.Claims.Username,
		UserID:   t.Claims.UserID,
	}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the authenticated caller resolved by the token verifier and
// injected into the request context by the access guard. Exactly one of the
// fields is set, depending on which flow issued the token.
type Identity struct {
	Username string `json:"username,omitempty"`
	UserID   int64  `json:"user_id,omitempty"`
}

// IsZero reports whether no identity was resolved.
func (i Identity) IsZero() bool {
	return i.Username == "" && i.UserID == 0
}
