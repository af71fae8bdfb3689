package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/domain"
	"github.com/aussiebroadwan/orgs/internal/orgs/store"
	"github.com/aussiebroadwan/orgs/pkg/cryptox"
	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
	"github.com/google/uuid"
)

// CredentialService owns user creation and password checks.
type CredentialService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
}

// WithStore returns a copy bound to st, typically a transaction.
func (s *CredentialService) WithStore(st store.Store) *CredentialService {
	c := *s
	c.Store = st
	return &c
}

// CreateUser validates req, hashes the password and inserts the user. A taken
// email is reported as a ValidationError on the email field; the store's
// unique index decides, so concurrent registrations cannot both win.
func (s *CredentialService) CreateUser(ctx context.Context, req orgsdk.RegisterRequest) (domain.User, error) {
	if err := validationError(req.Validate()); err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           uuid.New(),
		Email:        normaliseEmail(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fieldError("email", MsgEmailTaken)
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Verify returns the user for email when password matches. Unknown emails
// and wrong passwords both return ErrInvalidCredentials after the same
// amount of hashing work.
func (s *CredentialService) Verify(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, normaliseEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Hasher.VerifyDummy(password)
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("verify password: %w", err)
	}
	return u, nil
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
