package orgsdk

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	valid := `{"firstName":"John","lastName":"Doe","email":"john@example.com","password":"password123","phone":"08012345678"}`

	t.Run("valid", func(t *testing.T) {
		req := decode[RegisterRequest](t, valid)
		require.Nil(t, req.Validate())
		require.Equal(t, "John", req.FirstName)
		require.Equal(t, "08012345678", req.Phone)
	})

	t.Run("missing and blank are distinguished", func(t *testing.T) {
		req := decode[RegisterRequest](t, `{"firstName":"","email":"john@example.com","password":"x"}`)
		errs := req.Validate()
		require.Equal(t, []string{FieldBlank}, errs["firstName"])
		require.Equal(t, []string{FieldRequired}, errs["lastName"])
		require.NotContains(t, errs, "email")
	})

	t.Run("null counts as missing", func(t *testing.T) {
		req := decode[RegisterRequest](t, `{"firstName":null}`)
		require.Equal(t, []string{FieldRequired}, req.Validate()["firstName"])
	})

	t.Run("whitespace is blank", func(t *testing.T) {
		req := decode[RegisterRequest](t, `{"firstName":"   ","lastName":"Doe","email":"john@example.com","password":"x"}`)
		require.Equal(t, map[string][]string{"firstName": {FieldBlank}}, req.Validate())
	})

	t.Run("empty body reports every required field", func(t *testing.T) {
		errs := RegisterRequest{}.Validate()
		for _, f := range []string{"firstName", "lastName", "email", "password"} {
			require.Equal(t, []string{FieldRequired}, errs[f], f)
		}
		require.NotContains(t, errs, "phone")
	})

	t.Run("lengths", func(t *testing.T) {
		req := RegisterRequest{
			FirstName: strings.Repeat("a", MaxFirstNameLength+1),
			LastName:  strings.Repeat("é", MaxLastNameLength),
			Email:     "john@example.com",
			Password:  "x",
			Phone:     strings.Repeat("1", MaxPhoneLength+1),
		}
		errs := req.Validate()
		require.Equal(t, []string{FieldTooLong(MaxFirstNameLength)}, errs["firstName"])
		require.NotContains(t, errs, "lastName", "limits count characters, not bytes")
		require.Equal(t, []string{"Ensure this field has no more than 20 characters."}, errs["phone"])
	})

	t.Run("whitespace password is blank", func(t *testing.T) {
		req := decode[RegisterRequest](t, `{"firstName":"J","lastName":"D","email":"j@d.co","password":"   "}`)
		require.Equal(t, map[string][]string{"password": {FieldBlank}}, req.Validate())

		req = decode[RegisterRequest](t, `{"firstName":"J","lastName":"D","email":"j@d.co","password":" pw "}`)
		require.Nil(t, req.Validate())
		require.Equal(t, " pw ", req.Password)
	})

	t.Run("null characters", func(t *testing.T) {
		req := decode[RegisterRequest](t, `{"firstName":"J\u0000","lastName":"D","email":"j@d.co","password":"p\u0000w","phone":"0\u00001"}`)
		errs := req.Validate()
		for _, f := range []string{"firstName", "password", "phone"} {
			require.Equal(t, []string{FieldNullChar}, errs[f], f)
		}
		require.NotContains(t, errs, "lastName")
	})

	t.Run("bad email", func(t *testing.T) {
		for _, email := range []string{"john", "john@", "John <john@example.com>", "john@localhost", "john@example."} {
			req := RegisterRequest{FirstName: "J", LastName: "D", Email: email, Password: "x"}
			require.Equal(t, []string{FieldInvalidEmail}, req.Validate()["email"], email)
		}
	})
}

func TestLoginRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, decode[LoginRequest](t, `{"email":"a@b.co","password":"pw"}`).Validate())

	errs := decode[LoginRequest](t, `{"email":"","password":""}`).Validate()
	require.Equal(t, []string{FieldBlank}, errs["email"])
	require.Equal(t, []string{FieldBlank}, errs["password"])

	errs = decode[LoginRequest](t, `{"email":"a@b.co","password":"  "}`).Validate()
	require.Equal(t, []string{FieldBlank}, errs["password"])

	errs = decode[LoginRequest](t, `{}`).Validate()
	require.Equal(t, []string{FieldRequired}, errs["email"])
	require.Equal(t, []string{FieldRequired}, errs["password"])
}

func TestCreateOrganisationRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, CreateOrganisationRequest{Name: "Acme"}.Validate())

	errs := CreateOrganisationRequest{
		Name:        strings.Repeat("n", MaxOrganisationNameLength+1),
		Description: strings.Repeat("d", MaxOrganisationDescriptionLength+1),
	}.Validate()
	require.Len(t, errs["name"], 1)
	require.Len(t, errs["description"], 1)

	errs = decode[CreateOrganisationRequest](t, `{"name":""}`).Validate()
	require.Equal(t, []string{FieldBlank}, errs["name"])

	errs = CreateOrganisationRequest{Name: "Ac\x00me", Description: "\x00"}.Validate()
	require.Equal(t, []string{FieldNullChar}, errs["name"])
	require.Equal(t, []string{FieldNullChar}, errs["description"])
}

func TestAddMemberRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, AddMemberRequest{UserID: "0b0f6a4e-3e8c-4a57-9d1f-5d2c1f4c8a11"}.Validate())
	require.Equal(t, []string{FieldInvalidUUID}, AddMemberRequest{UserID: "42"}.Validate()["userId"])
	require.Equal(t, []string{FieldRequired}, AddMemberRequest{}.Validate()["userId"])

	padded := AddMemberRequest{UserID: " 0b0f6a4e-3e8c-4a57-9d1f-5d2c1f4c8a11\t"}
	require.Nil(t, padded.Validate())
	id, err := padded.ParseUserID()
	require.NoError(t, err)
	require.Equal(t, "0b0f6a4e-3e8c-4a57-9d1f-5d2c1f4c8a11", id.String())
}

func TestRefreshRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, RefreshRequest{Refresh: "abc"}.Validate())
	require.Equal(t, []string{FieldBlank}, decode[RefreshRequest](t, `{"refresh":""}`).Validate()["refresh"])
}

func TestRequestsMarshalWireNames(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(RegisterRequest{FirstName: "J", LastName: "D", Email: "j@d.co", Password: "pw"})
	require.NoError(t, err)
	require.JSONEq(t, `{"firstName":"J","lastName":"D","email":"j@d.co","password":"pw"}`, string(b))

	b, err = json.Marshal(AddMemberRequest{UserID: "u"})
	require.NoError(t, err)
	require.JSONEq(t, `{"userId":"u"}`, string(b))
}
