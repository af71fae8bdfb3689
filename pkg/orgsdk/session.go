package orgsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session makes requests with a fixed bearer token. It is safe for
// concurrent use.
type Session struct {
	client      *Client
	accessToken string
}

func (s *Session) AccessToken() string { return s.accessToken }

// ListOrganisations returns every organisation the caller owns or belongs to.
func (s *Session) ListOrganisations(ctx context.Context) (*OrganisationListResponse, error) {
	var out OrganisationListResponse
	if err := s.client.do(ctx, http.MethodGet, "/api/organisations", s.accessToken, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateOrganisation(ctx context.Context, req CreateOrganisationRequest) (*OrganisationResponse, error) {
	var out OrganisationResponse
	if err := s.client.do(ctx, http.MethodPost, "/api/organisations", s.accessToken, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetOrganisation(ctx context.Context, orgID string) (*OrganisationResponse, error) {
	var out OrganisationResponse
	path := "/api/organisations/" + url.PathEscape(orgID)
	if err := s.client.do(ctx, http.MethodGet, path, s.accessToken, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddMember adds userID to the organisation. Only the owner may do this.
func (s *Session) AddMember(ctx context.Context, orgID, userID string) (*MessageResponse, error) {
	var out MessageResponse
	path := "/api/organisations/" + url.PathEscape(orgID) + "/users"
	req := AddMemberRequest{UserID: userID}
	if err := s.client.do(ctx, http.MethodPost, path, s.accessToken, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetUser(ctx context.Context, userID string) (*UserResponse, error) {
	var out UserResponse
	path := "/api/users/" + url.PathEscape(userID)
	if err := s.client.do(ctx, http.MethodGet, path, s.accessToken, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
