package util

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// token purposes; a session token must never pass for a reset token
const (
	PurposeSession = "session"
	PurposeReset   = "password_reset"
)

// Claims is the JWT payload for both session and reset tokens.
type Claims struct {
	UserID    uint   `json:"user_id"`
	SessionID string `json:"session_id,omitempty"`
	Purpose   string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues the login JWT bound to a session row.
func GenerateSessionToken(secret string, userID uint, sessionID string, ttl time.Duration) (string, error) {
	return generate(secret, &Claims{
		UserID:    userID,
		SessionID: sessionID,
		Purpose:   PurposeSession,
	}, ttl)
}

// GenerateResetToken issues a self-contained, time-limited password-reset
// credential for the user. The result is base64url, safe to embed in a link
// path segment. A non-positive ttl yields an already-expired token, which is
// deliberate: callers take the window from config.
func GenerateResetToken(secret string, userID uint, ttl time.Duration) (string, error) {
	return generate(secret, &Claims{
		UserID:  userID,
		Purpose: PurposeReset,
	}, ttl)
}

func generate(secret string, claims *Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken parses and validates a JWT and returns its claims. Signature
// verification (HMAC) and expiry are both checked by the jwt library; the
// HMAC comparison is constant-time.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// VerifyResetToken checks a password-reset token and returns the user id it
// was issued for. Malformed, tampered, expired and wrong-purpose tokens are
// all reported identically as !ok so the caller cannot tell them apart.
func VerifyResetToken(secret, tokenStr string) (uint, bool) {
	claims, err := ParseToken(secret, tokenStr)
	if err != nil || claims.Purpose != PurposeReset || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}
