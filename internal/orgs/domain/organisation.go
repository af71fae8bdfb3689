package domain

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxOrganisationNameLength        = 100
	MaxOrganisationDescriptionLength = 250
)

// Organisation has exactly one owner. The owner is not stored in the member
// set; visibility is always "owner or member".
type Organisation struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (o Organisation) IsOwnedBy(userID uuid.UUID) bool {
	return o.OwnerID == userID
}

const defaultOrganisationSuffix = "'s Organisation"

// DefaultOrganisationName is the name of the organisation created for a new
// user at registration. attempt > 1 appends " (attempt)" to step around a
// name that is already taken. The first name is shortened so the result
// always fits MaxOrganisationNameLength.
func DefaultOrganisationName(firstName string, attempt int) string {
	suffix := defaultOrganisationSuffix
	if attempt > 1 {
		suffix += " (" + strconv.Itoa(attempt) + ")"
	}

	room := MaxOrganisationNameLength - utf8.RuneCountInString(suffix)
	if utf8.RuneCountInString(firstName) > room {
		firstName = string([]rune(firstName)[:room])
	}
	return firstName + suffix
}
