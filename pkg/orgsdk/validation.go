package orgsdk

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field limits enforced by the API.
const (
	MaxEmailLength                   = 240
	MaxFirstNameLength               = 150
	MaxLastNameLength                = 150
	MaxPasswordLength                = 128
	MaxPhoneLength                   = 20
	MaxOrganisationNameLength        = 100
	MaxOrganisationDescriptionLength = 250
)

// Field error messages.
const (
	FieldRequired     = "This field is required."
	FieldBlank        = "This field may not be blank."
	FieldInvalidEmail = "Enter a valid email address."
	FieldInvalidUUID  = "Must be a valid UUID."
	FieldNullChar     = "Null characters are not allowed."
)

// NonFieldErrors is the errors key for problems not tied to one field.
const NonFieldErrors = "non_field_errors"

// FieldTooLong is the message for a value longer than max characters.
func FieldTooLong(max int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", max)
}

// FieldErrors maps a JSON field name to its messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// orNil returns nil when no errors were recorded.
func (e FieldErrors) orNil() FieldErrors {
	if len(e) == 0 {
		return nil
	}
	return e
}

// presence records which JSON keys carried a non-null value.
type presence map[string]bool

func decodeTracked(data []byte, dst any) (presence, error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	p := make(presence, len(raw))
	for k, v := range raw {
		if string(v) != "null" {
			p[k] = true
		}
	}
	return p, nil
}

// required checks a mandatory string field. It reports whether the value is
// usable for further checks.
func (p presence) required(errs FieldErrors, field, value string) bool {
	if strings.TrimSpace(value) != "" {
		return noNull(errs, field, value)
	}
	if p[field] {
		errs.Add(field, FieldBlank)
	} else {
		errs.Add(field, FieldRequired)
	}
	return false
}

// noNull rejects NUL characters, which postgres text columns cannot store.
func noNull(errs FieldErrors, field, value string) bool {
	if strings.IndexByte(value, 0) >= 0 {
		errs.Add(field, FieldNullChar)
		return false
	}
	return true
}

func maxLength(errs FieldErrors, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		errs.Add(field, FieldTooLong(max))
	}
}

// ValidEmail reports whether s is a bare address with a dotted domain.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}

func validateEmail(p presence, errs FieldErrors, value string) {
	if !p.required(errs, "email", value) {
		return
	}
	value = strings.TrimSpace(value)
	maxLength(errs, "email", value, MaxEmailLength)
	if !ValidEmail(value) {
		errs.Add("email", FieldInvalidEmail)
	}
}

func (r *RegisterRequest) UnmarshalJSON(data []byte) error {
	type plain RegisterRequest
	var v plain
	fields, err := decodeTracked(data, &v)
	if err != nil {
		return err
	}
	*r = RegisterRequest(v)
	r.fields = fields
	return nil
}

// Validate returns field errors, or nil when the request is acceptable.
// Uniqueness of the email is checked by the server only.
func (r RegisterRequest) Validate() map[string][]string {
	errs := FieldErrors{}

	if r.fields.required(errs, "firstName", r.FirstName) {
		maxLength(errs, "firstName", strings.TrimSpace(r.FirstName), MaxFirstNameLength)
	}
	if r.fields.required(errs, "lastName", r.LastName) {
		maxLength(errs, "lastName", strings.TrimSpace(r.LastName), MaxLastNameLength)
	}
	validateEmail(r.fields, errs, r.Email)
	// Blank is judged on the trimmed value; the password itself is kept as sent.
	if r.fields.required(errs, "password", r.Password) {
		maxLength(errs, "password", r.Password, MaxPasswordLength)
	}
	if noNull(errs, "phone", r.Phone) {
		maxLength(errs, "phone", strings.TrimSpace(r.Phone), MaxPhoneLength)
	}

	return errs.orNil()
}

func (r *LoginRequest) UnmarshalJSON(data []byte) error {
	type plain LoginRequest
	var v plain
	fields, err := decodeTracked(data, &v)
	if err != nil {
		return err
	}
	*r = LoginRequest(v)
	r.fields = fields
	return nil
}

func (r LoginRequest) Validate() map[string][]string {
	errs := FieldErrors{}
	validateEmail(r.fields, errs, r.Email)
	r.fields.required(errs, "password", r.Password)
	return errs.orNil()
}

func (r *RefreshRequest) UnmarshalJSON(data []byte) error {
	type plain RefreshRequest
	var v plain
	fields, err := decodeTracked(data, &v)
	if err != nil {
		return err
	}
	*r = RefreshRequest(v)
	r.fields = fields
	return nil
}

func (r RefreshRequest) Validate() map[string][]string {
	errs := FieldErrors{}
	r.fields.required(errs, "refresh", r.Refresh)
	return errs.orNil()
}

func (r *CreateOrganisationRequest) UnmarshalJSON(data []byte) error {
	type plain CreateOrganisationRequest
	var v plain
	fields, err := decodeTracked(data, &v)
	if err != nil {
		return err
	}
	*r = CreateOrganisationRequest(v)
	r.fields = fields
	return nil
}

func (r CreateOrganisationRequest) Validate() map[string][]string {
	errs := FieldErrors{}
	if r.fields.required(errs, "name", r.Name) {
		maxLength(errs, "name", strings.TrimSpace(r.Name), MaxOrganisationNameLength)
	}
	if noNull(errs, "description", r.Description) {
		maxLength(errs, "description", strings.TrimSpace(r.Description), MaxOrganisationDescriptionLength)
	}
	return errs.orNil()
}

func (r *AddMemberRequest) UnmarshalJSON(data []byte) error {
	type plain AddMemberRequest
	var v plain
	fields, err := decodeTracked(data, &v)
	if err != nil {
		return err
	}
	*r = AddMemberRequest(v)
	r.fields = fields
	return nil
}

func (r AddMemberRequest) Validate() map[string][]string {
	errs := FieldErrors{}
	if r.fields.required(errs, "userId", r.UserID) {
		if _, err := r.ParseUserID(); err != nil {
			errs.Add("userId", FieldInvalidUUID)
		}
	}
	return errs.orNil()
}

// ParseUserID returns the userId with surrounding whitespace ignored.
func (r AddMemberRequest) ParseUserID() (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(r.UserID))
}
