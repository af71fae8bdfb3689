package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/orgs/internal/orgs/service"
	"github.com/aussiebroadwan/orgs/pkg/httpx"
	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/aussiebroadwan/orgs/pkg/slogx"
	"github.com/google/uuid"
)

type OrganisationsHandler struct {
	MembershipService *service.MembershipService
}

// HandleList godoc
//
//	@Summary		List organisations
//	@Description	Returns every organisation the caller owns or is a member of.
//	@Tags			Organisations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	orgsdk.OrganisationListResponse
//	@Failure		401	{object}	httpx.ErrorEnvelope
//	@Router			/api/organisations [get].
func (h *OrganisationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	orgs, err := h.MembershipService.ListVisible(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := orgsdk.OrganisationList{Organisations: make([]orgsdk.Organisation, 0, len(orgs))}
	for _, o := range orgs {
		out.Organisations = append(out.Organisations, toOrganisation(o))
	}

	// The message is keyed on the caller's first name; the token carries
	// only the id and email.
	name, err := h.firstName(r, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, fmt.Sprintf("%s's Organisations", name), out)
}

// HandleCreate godoc
//
//	@Summary		Create organisation
//	@Description	Creates an organisation owned by the caller. The owner is not added to the member list.
//	@Tags			Organisations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		orgsdk.CreateOrganisationRequest	true	"Organisation"
//	@Success		201		{object}	orgsdk.OrganisationResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope	"Client error, with field errors"
//	@Failure		401		{object}	httpx.ErrorEnvelope
//	@Router			/api/organisations [post].
func (h *OrganisationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req orgsdk.CreateOrganisationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeClientError(w)
		return
	}

	org, err := h.MembershipService.CreateOrganisation(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, msgOrganisationCreated, toOrganisation(org))
}

// HandleGet godoc
//
//	@Summary		Get organisation
//	@Description	Returns one organisation. Unknown organisations and ones the caller cannot see both return 400.
//	@Tags			Organisations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orgId	path		string	true	"Organisation id (UUID)"
//	@Success		200		{object}	orgsdk.OrganisationResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope	"Client error"
//	@Failure		401		{object}	httpx.ErrorEnvelope
//	@Router			/api/organisations/{orgId} [get].
func (h *OrganisationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	orgID, ok := pathUUID(w, r, "orgId")
	if !ok {
		return
	}

	org, err := h.MembershipService.GetVisible(r.Context(), id, orgID)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			writeClientError(w)
			return
		}
		writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, msgOrganisationData, toOrganisation(org))
}

// HandleAddMember godoc
//
//	@Summary		Add member
//	@Description	Adds a user to the organisation. Only the owner may do this. Adding an existing member succeeds.
//	@Tags			Organisations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orgId	path		string					true	"Organisation id (UUID)"
//	@Param			body	body		orgsdk.AddMemberRequest	true	"User to add"
//	@Success		200		{object}	orgsdk.MessageResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope	"Unknown organisation or user"
//	@Failure		401		{object}	httpx.ErrorEnvelope
//	@Failure		403		{object}	httpx.ErrorEnvelope	"Caller is not the owner"
//	@Router			/api/organisations/{orgId}/users [post].
func (h *OrganisationsHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	orgID, ok := pathUUID(w, r, "orgId")
	if !ok {
		return
	}

	var req orgsdk.AddMemberRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeClientError(w)
		return
	}
	if errs := req.Validate(); errs != nil {
		httpx.WriteFieldErrors(w, http.StatusBadRequest, httpx.StatusBadRequest, msgClientError, errs)
		return
	}
	userID, err := req.ParseUserID()
	if err != nil {
		httpx.WriteFieldErrors(w, http.StatusBadRequest, httpx.StatusBadRequest, msgClientError,
			map[string][]string{"userId": {orgsdk.FieldInvalidUUID}})
		return
	}

	if _, err := h.MembershipService.AddMember(r.Context(), id, orgID, userID); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			slogx.FromContext(r.Context()).Info("add member denied",
				"org_id", orgID.String(), "caller", id.UserID.String())
			httpx.WriteError(w, http.StatusForbidden, httpx.StatusForbidden, msgForbidden)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, orgsdk.MessageResponse{
		Status:  httpx.StatusSuccess,
		Message: msgMemberAdded,
	})
}

func (h *OrganisationsHandler) firstName(r *http.Request, id service.Identity) (string, error) {
	u, err := h.MembershipService.Store.Users().GetUserByID(r.Context(), id.UserID)
	if err != nil {
		return "", fmt.Errorf("load caller: %w", err)
	}
	return u.FirstName, nil
}

// pathUUID parses a path value, writing a 400 when it is not a UUID.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeClientError(w)
		return uuid.Nil, false
	}
	return id, true
}
