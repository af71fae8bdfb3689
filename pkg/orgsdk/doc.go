/*
Package orgsdk is the wire contract and Go client for the orgs API.

The request and response types here are the exact JSON shapes served by the
API; field names are camelCase (firstName, userId, orgId) and must not change.

Use Client for the unauthenticated endpoints and a Session for everything that
needs a bearer token:

	client := orgsdk.NewClient("http://localhost:8080")

	auth, err := client.Register(ctx, orgsdk.RegisterRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "password123",
	})
	if err != nil {
		return err
	}

	session := client.NewSession(auth.Data.AccessToken)
	orgs, err := session.ListOrganisations(ctx)

# Errors

Every non-2xx response is returned as an *APIError carrying the decoded
envelope, so callers can inspect field errors:

	var apiErr *orgsdk.APIError
	if errors.As(err, &apiErr) && apiErr.HasFieldError("email") {
		// ...
	}

# Validation

Request types implement Validate, which applies the same field rules the
server enforces. A field that was never supplied reports FieldRequired; a
field supplied as an empty string reports FieldBlank.
*/
package orgsdk
