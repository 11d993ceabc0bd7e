package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiry for tokens without an "exp" claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiry returns the "exp" claim of a bearer token without verifying
// its signature. The SDK never holds the signing key; it only needs to know
// whether a token from its TokenProvider is still worth sending.
//
// Returns [ErrNoExpiry] if the token carries no "exp" claim, or a wrapped
// jwt error if the token cannot be parsed.
//
// Example usage:
//
//	exp, err := utils.TokenExpiry(raw)
//	if err == nil && time.Now().After(exp) {
//	    // refresh the token
//	}
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// IsTokenExpired reports whether tokenString is a JWT that expires within
// leeway of now. Opaque (non-JWT) tokens and tokens without an expiry are
// never reported as expired; the backend stays the judge of those.
func IsTokenExpired(tokenString string, now time.Time, leeway time.Duration) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return !now.Add(leeway).Before(exp)
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token. The SDK itself
// never issues tokens; this exists for tests and local tooling that need a
// well-formed bearer token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the token owner
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if issuer or signKey is empty or tokenDuration is zero.
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}
	return tokenString, nil
}
