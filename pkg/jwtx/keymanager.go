package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/aussiebroadwan/orgs/pkg/cryptox"
)

const (
	AlgorithmHS256 = "HS256"
	AlgorithmEdDSA = "EdDSA"
)

// KeyManager holds the process-wide signing key and the matching verifier.
// Keys are loaded once at start-up and never rotated.
type KeyManager struct {
	Signer   Signer
	Verifier Verifier
	KeySet   *KeySet
}

// KeyManagerOptions selects the algorithm and key material.
type KeyManagerOptions struct {
	// Algorithm is HS256 or EdDSA.
	Algorithm string

	// Secret is the HS256 shared secret. A random one is generated when empty.
	Secret []byte

	// PrivateKey is the EdDSA key. A random one is generated when nil.
	PrivateKey ed25519.PrivateKey

	Issuer   string
	Audience []string
}

// NewKeyManager builds a KeyManager. Generated keys only live in memory, so
// every token becomes invalid when the process restarts.
func NewKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}
	vopts := VerifyOptions{Issuer: opts.Issuer, Audience: opts.Audience}
	keys := NewKeySet()

	kid, err := newKeyID()
	if err != nil {
		return nil, err
	}

	switch opts.Algorithm {
	case AlgorithmHS256, "":
		secret := opts.Secret
		if len(secret) == 0 {
			secret = make([]byte, MinHS256SecretLength)
			if _, err := rand.Read(secret); err != nil {
				return nil, fmt.Errorf("jwtx: generate secret: %w", err)
			}
		}
		signer, err := NewSignerHS256(kid, secret)
		if err != nil {
			return nil, err
		}
		return &KeyManager{Signer: signer, Verifier: NewVerifierHS256(secret, vopts), KeySet: keys}, nil

	case AlgorithmEdDSA:
		priv := opts.PrivateKey
		if priv == nil {
			if _, priv, err = ed25519.GenerateKey(rand.Reader); err != nil {
				return nil, fmt.Errorf("jwtx: generate Ed25519 key: %w", err)
			}
		}
		signer, err := NewSignerEdDSA(kid, priv)
		if err != nil {
			return nil, err
		}
		if err := keys.AddSigner(signer); err != nil {
			return nil, err
		}
		return &KeyManager{Signer: signer, Verifier: NewVerifierEdDSA(keys, vopts), KeySet: keys}, nil

	default:
		return nil, fmt.Errorf("jwtx: unsupported algorithm %q (supported: HS256, EdDSA)", opts.Algorithm)
	}
}

// IsReady reports whether a valid signing key is loaded.
func (km *KeyManager) IsReady() bool {
	return km != nil && km.Signer != nil && km.Signer.Validate() == nil
}

// PublicJWKS returns the publishable keys; empty for HS256.
func (km *KeyManager) PublicJWKS() JWKS {
	return km.KeySet.PublicJWKS()
}

func newKeyID() (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", fmt.Errorf("jwtx: generate key id: %w", err)
	}
	return "orgs-" + token, nil
}
