package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/service"
	"github.com/aussiebroadwan/orgs/pkg/httpx"
	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/aussiebroadwan/orgs/pkg/slogx"
)

// Envelope messages.
const (
	msgClientError          = "Client error"
	msgRegistrationOK       = "Registration successful"
	msgRegistrationFailed   = "Registration unsuccessful"
	msgLoginOK              = "Login successful"
	msgAuthenticationFailed = "Authentication failed"
	msgOrganisationCreated  = "Organisation created successfully"
	msgOrganisationData     = "Organisation Data Retrieved"
	msgMemberAdded          = "User added to organisation successfully"
	msgUserData             = "User Data Retrieved"
	msgForbidden            = "You do not have permission to perform this action."
	msgNoActiveAccount      = "No active account found with the given credentials"
	msgTokenInvalid         = "Token is invalid or expired"
	msgInternal             = "Internal server error"
	msgMalformedBody        = "Malformed JSON request body."
	msgInvalidEndpoint      = "Invalid Enpoint!"
	msgUnauthenticated      = "Authentication credentials were not provided or are invalid"
)

func writeSuccess[T any](w http.ResponseWriter, code int, message string, data T) {
	httpx.WriteJSON(w, code, orgsdk.Response[T]{
		Status:  httpx.StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func writeClientError(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, httpx.StatusBadRequest, msgClientError)
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	httpx.WriteError(w, http.StatusInternalServerError, httpx.StatusError, msgInternal)
}

// writeServiceError maps resource endpoint errors. Unknown and invisible
// resources are both 400 Client error; only the owner check is a 403.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteFieldErrors(w, http.StatusBadRequest, httpx.StatusBadRequest, msgClientError, verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		writeClientError(w)
	case errors.Is(err, service.ErrUnauthenticated):
		httpx.WriteError(w, http.StatusUnauthorized, httpx.StatusUnauthorized, msgUnauthenticated)
	default:
		writeInternalError(w, r, err)
	}
}

// identity returns the caller set by the authentication middleware.
func identity(r *http.Request) (service.Identity, error) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		return service.Identity{}, service.ErrUnauthenticated
	}
	return service.IdentityFromClaims(claims)
}

func toUser(u domain.User) orgsdk.User {
	return orgsdk.User{
		UserID:    u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

func toOrganisation(o domain.Organisation) orgsdk.Organisation {
	return orgsdk.Organisation{
		OrgID:       o.ID.String(),
		Name:        o.Name,
		Description: o.Description,
	}
}

// NotFoundHandler answers every unmatched route and method.
//
//	@Summary	Unknown route
//	@Tags		System
//	@Produce	json
//	@Failure	404	{object}	orgsdk.NotFoundResponse
//	@Router		/{path} [get].
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusNotFound, orgsdk.NotFoundResponse{Error: msgInvalidEndpoint})
	}
}
