package orgsdk

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientRegister(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "John", req.FirstName)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"success","message":"Registration successful","data":{"accessToken":"tok","user":{"userId":"u1","firstName":"John","lastName":"Doe","email":"john@example.com","phone":""}}}`))
	}))
	t.Cleanup(srv.Close)

	resp, err := NewClient(srv.URL+"/").Register(t.Context(), RegisterRequest{FirstName: "John"})
	require.NoError(t, err)
	require.Equal(t, "tok", resp.Data.AccessToken)
	require.Equal(t, "u1", resp.Data.User.UserID)
}

func TestClientErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/register":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":"Bad request","message":"Registration unsuccessful","errors":{"email":["user with this email already exists."]},"statusCode":400}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Invalid Enpoint!"}`))
		}
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL)

	t.Run("envelope", func(t *testing.T) {
		_, err := client.Register(t.Context(), RegisterRequest{})
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
		require.Equal(t, 400, apiErr.StatusCode)
		require.Equal(t, "Registration unsuccessful", apiErr.Message)
		require.True(t, apiErr.HasFieldError("email"))
		require.False(t, apiErr.HasFieldError("firstName"))
	})

	t.Run("not an envelope", func(t *testing.T) {
		_, err := client.GetLiveness(t.Context())
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
		require.Equal(t, "Invalid Enpoint!", apiErr.Message)
		require.Contains(t, apiErr.Body, "Invalid Enpoint!")
	})
}

func TestSessionSendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/organisations":
			_, _ = w.Write([]byte(`{"status":"success","message":"John's Organisations","data":{"organisations":[{"orgId":"o1","name":"John's Organisation","description":""}]}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/organisations/o1/users":
			var req AddMemberRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "u2", req.UserID)
			_, _ = w.Write([]byte(`{"status":"success","message":"User added to organisation successfully"}`))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)

	session := NewClient(srv.URL).NewSession("tok")
	require.Equal(t, "tok", session.AccessToken())

	list, err := session.ListOrganisations(t.Context())
	require.NoError(t, err)
	require.Len(t, list.Data.Organisations, 1)
	require.Equal(t, "o1", list.Data.Organisations[0].OrgID)

	msg, err := session.AddMember(t.Context(), "o1", "u2")
	require.NoError(t, err)
	require.Equal(t, "User added to organisation successfully", msg.Message)
}
