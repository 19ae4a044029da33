package token

import "time"

const (
	// DefaultExpiryBuffer is subtracted from the token's expiry so callers
	// stop trusting a token shortly before the server does.
	DefaultExpiryBuffer = 60 * time.Second

	// DefaultRefreshThreshold is the remaining-lifetime window in which a
	// token becomes refresh-eligible.
	DefaultRefreshThreshold = 5 * time.Minute
)

// Policy answers token lifetime questions against configurable margins.
// The zero value uses the package defaults.
type Policy struct {
	ExpiryBuffer     time.Duration
	RefreshThreshold time.Duration
}

// IsExpired reports whether the token must no longer be trusted at the
// given instant. It fails closed: an undecodable token, a missing `exp`
// claim, or a non-numeric `exp` claim all count as expired.
func (p Policy) IsExpired(raw string, now time.Time) bool {
	claims, ok := DecodeClaims(raw)
	if !ok {
		return true
	}

	exp, ok := claims.ExpiresAt()
	if !ok {
		return true
	}

	return !now.Before(exp.Add(-p.buffer()))
}

// IsNearExpiry reports whether the token's remaining lifetime is within
// the refresh threshold. Unlike IsExpired it fails open: an absent or
// undecodable token is not refresh-eligible, because there is nothing to
// refresh proactively.
func (p Policy) IsNearExpiry(raw string, now time.Time) bool {
	if raw == "" {
		return false
	}

	claims, ok := DecodeClaims(raw)
	if !ok {
		return false
	}

	exp, ok := claims.ExpiresAt()
	if !ok {
		return false
	}

	return exp.Sub(now) < p.threshold()
}

func (p Policy) buffer() time.Duration {
	if p.ExpiryBuffer > 0 {
		return p.ExpiryBuffer
	}
	return DefaultExpiryBuffer
}

func (p Policy) threshold() time.Duration {
	if p.RefreshThreshold > 0 {
		return p.RefreshThreshold
	}
	return DefaultRefreshThreshold
}
