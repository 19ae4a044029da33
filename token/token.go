package token

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded claims segment of a compact JWS string.
type Claims map[string]any

// DecodeClaims decodes the claims segment of a three-part compact token
// without verifying the signature. Verification is the server's job; this
// decode only answers whether an expiry claim is available locally.
//
// Any structural or parse failure yields (nil, false). DecodeClaims never
// panics and never returns an error to the caller.
func DecodeClaims(raw string) (Claims, bool) {
	if raw == "" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, false
	}

	return Claims(claims), true
}

// ExpiresAt returns the `exp` claim as a wall-clock instant. The second
// return is false when the claim is missing or not numeric.
func (c Claims) ExpiresAt() (time.Time, bool) {
	v, ok := c["exp"]
	if !ok {
		return time.Time{}, false
	}

	switch exp := v.(type) {
	case float64:
		return time.Unix(int64(exp), 0), true
	case json.Number:
		f, err := exp.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(int64(f), 0), true
	case int64:
		return time.Unix(exp, 0), true
	default:
		return time.Time{}, false
	}
}
