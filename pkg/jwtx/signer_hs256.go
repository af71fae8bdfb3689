package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256SecretLength is the shortest shared secret accepted, in bytes.
const MinHS256SecretLength = 32

// HS256Signer signs tokens with a shared secret. The secret never leaves the
// process so there is nothing to publish in the JWKS.
type HS256Signer struct {
	kid    string
	secret []byte
}

// NewSignerHS256 wraps secret, which must be at least MinHS256SecretLength bytes.
func NewSignerHS256(kid string, secret []byte) (*HS256Signer, error) {
	if len(secret) < MinHS256SecretLength {
		return nil, errors.New("jwtx: HS256 secret too short")
	}
	return &HS256Signer{kid: kid, secret: secret}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }
func (s *HS256Signer) KID() string { return s.kid }

func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.secret)
}

func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinHS256SecretLength {
		return errors.New("jwtx: HS256 secret too short")
	}
	return nil
}
