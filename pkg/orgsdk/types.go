package orgsdk

import "github.com/aussiebroadwan/orgs/pkg/jwtx"

// Response is the success envelope shared by every resource endpoint.
type Response[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// MessageResponse is a success envelope with no data.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// User is the public view of an account. The password hash never leaves the
// server.
type User struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Organisation struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AuthData is returned by register and login.
type AuthData struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type AuthResponse = Response[AuthData]

type OrganisationList struct {
	Organisations []Organisation `json:"organisations"`
}

type OrganisationListResponse = Response[OrganisationList]

type OrganisationResponse = Response[Organisation]

type UserResponse = Response[User]

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`

	fields presence
}

// LoginRequest is the body of POST /auth/login and POST /api/token/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	fields presence
}

// RefreshRequest is the body of POST /api/token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`

	fields presence
}

// TokenPairResponse is returned by the token endpoints. Both values are bare
// strings; access is a JWT and refresh is opaque.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// CreateOrganisationRequest is the body of POST /api/organisations.
type CreateOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	fields presence
}

// AddMemberRequest is the body of POST /api/organisations/{orgId}/users.
type AddMemberRequest struct {
	UserID string `json:"userId"`

	fields presence
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports "ok" or "error: ..." per dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse is the public key set published at /.well-known/jwks.json.
type JWKSResponse = jwtx.JWKS

// NotFoundResponse is the body of every unknown route.
type NotFoundResponse struct {
	Error string `json:"error"`
}
