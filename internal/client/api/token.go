package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HasToken reports whether a usable bearer token is configured. With no
// usable token, requests go out unauthenticated and the session degrades
// to the synthesized-welcome path instead of failing.
func (c *HTTPClient) HasToken() bool {
	return tokenUsable(c.token)
}

// tokenUsable reports whether the token is present and not obviously
// expired. Signatures are not verified here; only the expiry claim is
// inspected so dead tokens are dropped without a round trip. Opaque
// (non-JWT) tokens are always sent and left for the server to judge.
func tokenUsable(token string) bool {
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}
