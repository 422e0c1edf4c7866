// Package auth implements OAuth2 flows against the Spotify accounts service:
// client-credentials tokens, user authorization with refresh, and
// self-refreshing token wrappers.
package auth

import (
	"time"

	"golang.org/x/oauth2"
)

// ExpiryMargin is how long before actual expiry a token reports itself
// as expiring, leaving headroom for in-flight requests.
const ExpiryMargin = 30 * time.Second

// Token is an access token issued by the accounts service.
// Client tokens have no refresh token.
type Token struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	Scope        Scope
	ExpiresAt    time.Time
}

// fromOAuth2 converts an oauth2 token, picking the granted scope out of
// the extra response fields.
func fromOAuth2(t *oauth2.Token) *Token {
	tok := &Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    t.Expiry,
	}
	if s, ok := t.Extra("scope").(string); ok {
		tok.Scope = ParseScope(s)
	}
	return tok
}

// ExpiresIn returns the time remaining until expiry. Non-positive when
// already expired.
func (t *Token) ExpiresIn() time.Duration {
	return time.Until(t.ExpiresAt)
}

// IsExpiring reports whether the token is within ExpiryMargin of expiry.
func (t *Token) IsExpiring() bool {
	return t.ExpiresIn() < ExpiryMargin
}
