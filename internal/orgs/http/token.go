package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgs/internal/orgs/service"
	"github.com/aussiebroadwan/orgs/pkg/httpx"
	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/aussiebroadwan/orgs/pkg/slogx"
)

// TokenHandler serves the token pair endpoints.
type TokenHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

// HandleObtain godoc
//
//	@Summary		Obtain token pair
//	@Description	Exchanges email and password for an access token and an opaque refresh token.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Param			body	body		orgsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	orgsdk.TokenPairResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope	"Missing or malformed fields"
//	@Failure		401		{object}	httpx.ErrorEnvelope	"No active account found with the given credentials"
//	@Header			200		{string}	Cache-Control	"no-store"
//	@Router			/api/token/ [post].
func (h *TokenHandler) HandleObtain(w http.ResponseWriter, r *http.Request) {
	var req orgsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeClientError(w)
		return
	}

	pair, err := h.AccountService.ObtainTokenPair(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteFieldErrors(w, http.StatusBadRequest, httpx.StatusBadRequest, msgClientError, verr.Fields)
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, httpx.StatusUnauthorized, msgNoActiveAccount)
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, orgsdk.TokenPairResponse{
		Access:  pair.AccessToken,
		Refresh: pair.RefreshToken,
	})
}

// HandleRefresh godoc
//
//	@Summary		Refresh token pair
//	@Description	Rotates a refresh token. The presented token stops working; presenting it again revokes every
//	@Description	refresh token of the user.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Param			body	body		orgsdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	orgsdk.TokenPairResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope	"Missing refresh field"
//	@Failure		401		{object}	httpx.ErrorEnvelope	"Token is invalid or expired"
//	@Router			/api/token/refresh/ [post].
func (h *TokenHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req orgsdk.RefreshRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeClientError(w)
		return
	}
	if errs := req.Validate(); errs != nil {
		httpx.WriteFieldErrors(w, http.StatusBadRequest, httpx.StatusBadRequest, msgClientError, errs)
		return
	}

	pair, err := h.TokenService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			slogx.FromContext(r.Context()).Info("refresh rejected")
			httpx.WriteError(w, http.StatusUnauthorized, httpx.StatusUnauthorized, msgTokenInvalid)
			return
		}
		writeInternalError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, orgsdk.TokenPairResponse{
		Access:  pair.AccessToken,
		Refresh: pair.RefreshToken,
	})
}
