package jwtx

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// VerifyOptions are the claim expectations shared by all verifiers.
type VerifyOptions struct {
	// Issuer the token must carry. Empty means don't care.
	Issuer string

	// Audience values of which at least one must be present. Empty means don't care.
	Audience []string

	// Leeway for exp/nbf clock skew.
	Leeway time.Duration
}

type verifier struct {
	alg     string
	keyFunc jwt.Keyfunc
	opts    VerifyOptions
}

// NewVerifierHS256 verifies tokens signed with the shared secret.
func NewVerifierHS256(secret []byte, opts VerifyOptions) Verifier {
	return &verifier{
		alg:  jwt.SigningMethodHS256.Alg(),
		opts: opts,
		keyFunc: func(*jwt.Token) (any, error) {
			return secret, nil
		},
	}
}

// NewVerifierEdDSA verifies tokens against the Ed25519 keys in keys.
func NewVerifierEdDSA(keys *KeySet, opts VerifyOptions) Verifier {
	return &verifier{
		alg:  jwt.SigningMethodEdDSA.Alg(),
		opts: opts,
		keyFunc: func(t *jwt.Token) (any, error) {
			kid, _ := t.Header["kid"].(string)
			if kid == "" {
				return nil, ErrUnknownKID
			}
			pub, err := keys.Get(kid)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownKID, kid)
			}
			ed, ok := pub.(ed25519.PublicKey)
			if !ok {
				return nil, ErrAlgMismatch
			}
			return ed, nil
		},
	}
}

// Verify parses tokenStr, checks its signature and then the claim
// expectations. Errors are one of the package sentinels.
func (v *verifier) Verify(tokenStr string) (Claims, error) {
	// Expiry is checked below with our own leeway so the sentinel errors are
	// stable regardless of the jwt library's validation order.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{v.alg}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, v.keyFunc)
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.opts.Audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(v.opts.Leeway); err != nil {
		return Claims{}, err
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidClaim
	}
	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrUnknownKID), errors.Is(err, ErrAlgMismatch):
		return err
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
