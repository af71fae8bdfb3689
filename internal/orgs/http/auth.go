package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgs/internal/orgs/service"
	"github.com/aussiebroadwan/orgs/pkg/httpx"
	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
)

// AuthHandler serves /auth/register and /auth/login.
type AuthHandler struct {
	AccountService *service.AccountService
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Creates a user and their default organisation "<firstName>'s Organisation" in one transaction,
//	@Description	then returns an access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		orgsdk.RegisterRequest	true	"New user"
//	@Success		201		{object}	orgsdk.AuthResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope	"Registration unsuccessful, with field errors"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req orgsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteFieldErrors(w, http.StatusBadRequest, httpx.StatusBadRequest, msgRegistrationFailed,
			map[string][]string{orgsdk.NonFieldErrors: {msgMalformedBody}})
		return
	}

	res, err := h.AccountService.Register(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			httpx.WriteFieldErrors(w, http.StatusBadRequest, httpx.StatusBadRequest, msgRegistrationFailed, verr.Fields)
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, msgRegistrationOK, orgsdk.AuthData{
		AccessToken: res.AccessToken,
		User:        toUser(res.User),
	})
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Exchanges email and password for an access token. Unknown emails and wrong passwords get the same response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		orgsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	orgsdk.AuthResponse
//	@Failure		401		{object}	httpx.ErrorEnvelope	"Authentication failed"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req orgsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeLoginFailed(w, map[string][]string{orgsdk.NonFieldErrors: {msgMalformedBody}})
		return
	}

	res, err := h.AccountService.Login(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeLoginFailed(w, verr.Fields)
		case errors.Is(err, service.ErrInvalidCredentials):
			writeLoginFailed(w, nil)
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeSuccess(w, http.StatusOK, msgLoginOK, orgsdk.AuthData{
		AccessToken: res.AccessToken,
		User:        toUser(res.User),
	})
}

// The status string stays "Bad request" on a 401 for compatibility with
// existing clients.
func writeLoginFailed(w http.ResponseWriter, fields map[string][]string) {
	httpx.WriteFieldErrors(w, http.StatusUnauthorized, httpx.StatusBadRequest, msgAuthenticationFailed, fields)
}
