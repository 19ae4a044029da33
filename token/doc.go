// Package token decodes compact JWS access tokens client-side and decides
// when they are expired or refresh-eligible.
//
// Nothing here is a security boundary. [DecodeClaims] deliberately skips
// signature verification: the server verifies tokens on every request;
// the client only needs the `exp` claim to schedule refreshes and drop
// dead sessions early.
//
// The two lifetime checks are asymmetric on purpose: [Policy.IsExpired]
// fails closed (a token we cannot read is a token we cannot trust), while
// [Policy.IsNearExpiry] fails open to "no" (a token we cannot read has no
// expiry worth refreshing ahead of time).
package token
