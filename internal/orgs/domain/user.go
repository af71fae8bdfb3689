package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits shared by validation and the schema.
const (
	MaxEmailLength     = 240
	MaxFirstNameLength = 150
	MaxLastNameLength  = 150
	MaxPhoneLength     = 20
)

type User struct {
	ID           uuid.UUID
	Email        string // stored lower-cased
	FirstName    string
	LastName     string
	PasswordHash string // argon2id PHC string
	Phone        string // empty when not given
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
