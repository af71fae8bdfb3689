package jwtx

// Signer is anything that can sign access tokens.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	Validate() error
}

// PublicSigner is a Signer whose verification key may be published.
type PublicSigner interface {
	Signer
	PublicJWK() JWK
}
