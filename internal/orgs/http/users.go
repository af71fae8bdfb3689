package http

import (
	"net/http"

	"github.com/aussiebroadwan/orgs/internal/orgs/service"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleGet godoc
//
//	@Summary		Get user
//	@Description	Returns a user record. Any authenticated caller may look up any user id.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userId	path		string	true	"User id (UUID)"
//	@Success		200		{object}	orgsdk.UserResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope	"Unknown or malformed id"
//	@Failure		401		{object}	httpx.ErrorEnvelope
//	@Router			/api/users/{userId} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if _, err := identity(r); err != nil {
		writeServiceError(w, r, err)
		return
	}
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	u, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, msgUserData, toUser(u))
}
