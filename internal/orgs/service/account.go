package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/store"
	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/aussiebroadwan/orgs/pkg/slogx"
)

// AccountService runs the register and login flows.
type AccountService struct {
	Store       store.Store
	Credentials *CredentialService
	Membership  *MembershipService
	Tokens      *TokenService
}

// AuthResult is what register and login hand back to the caller.
type AuthResult struct {
	User         domain.User
	Organisation domain.Organisation // set by Register only
	AccessToken  string
}

// Register creates the user and their default organisation and signs an
// access token. All of it happens in one transaction: on any failure nothing
// is persisted.
func (s *AccountService) Register(ctx context.Context, req orgsdk.RegisterRequest) (*AuthResult, error) {
	var result *AuthResult

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := s.Credentials.WithStore(tx).CreateUser(ctx, req)
		if err != nil {
			return err
		}

		org, err := s.Membership.WithStore(tx).createDefaultOrganisation(ctx, u)
		if err != nil {
			return err
		}

		token, err := s.Tokens.Issue(u)
		if err != nil {
			return err
		}

		result = &AuthResult{User: u, Organisation: org, AccessToken: token}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("user registered",
		slog.String("user_id", result.User.ID.String()),
		slog.String("org_id", result.Organisation.ID.String()),
	)
	return result, nil
}

// Login checks credentials and signs an access token. Validation failures
// are returned as ValidationError; bad credentials as ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, req orgsdk.LoginRequest) (*AuthResult, error) {
	u, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	token, err := s.Tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, AccessToken: token}, nil
}

// ObtainTokenPair checks credentials and issues an access and refresh token.
func (s *AccountService) ObtainTokenPair(ctx context.Context, req orgsdk.LoginRequest) (*domain.TokenPair, error) {
	u, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.Tokens.IssuePair(ctx, u)
}

func (s *AccountService) authenticate(ctx context.Context, req orgsdk.LoginRequest) (domain.User, error) {
	if err := validationError(req.Validate()); err != nil {
		return domain.User{}, err
	}

	u, err := s.Credentials.Verify(ctx, req.Email, req.Password)
	if err != nil {
		slogx.FromContext(ctx).Info("login failed", slog.Any("err", err))
		return domain.User{}, err
	}
	return u, nil
}
