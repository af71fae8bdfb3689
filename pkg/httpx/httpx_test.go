package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/orgs/pkg/httpx"
	"github.com/aussiebroadwan/orgs/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	t.Parallel()
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Algorithm: jwtx.AlgorithmHS256, Issuer: "test"})
	require.NoError(t, err)

	valid, err := km.Signer.Sign(jwtx.NewAccessClaims("user-1", "a@b.co", time.Minute, "test", nil, time.Now()))
	require.NoError(t, err)
	expired, err := km.Signer.Sign(jwtx.NewAccessClaims("user-1", "a@b.co", -time.Minute, "test", nil, time.Now()))
	require.NoError(t, err)

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.UserIDFromContext(r.Context())
		require.True(t, ok)
		claims, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, id, claims.Subject)
		_, _ = w.Write([]byte(id))
	}), httpx.AuthnMiddleware(km.Verifier.Verify))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + valid, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				require.Equal(t, "user-1", rec.Body.String())
				return
			}

			require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
			var env httpx.ErrorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			require.Equal(t, http.StatusUnauthorized, env.StatusCode)
			require.Equal(t, httpx.StatusUnauthorized, env.Status)
		})
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), httpx.Recover())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), `"statusCode":500`)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()
	type body struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"object", `{"name":"acme"}`, "acme", false},
		{"empty body", ``, "", false},
		{"unknown fields ignored", `{"name":"acme","extra":1}`, "acme", false},
		{"not json", `name=acme`, "", true},
		{"two objects", `{"name":"a"}{"name":"b"}`, "", true},
		{"wrong type", `{"name":5}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.in))
			err := httpx.DecodeJSON(httptest.NewRecorder(), req, &b)
			if tt.wantErr {
				require.ErrorIs(t, err, httpx.ErrBadBody)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, b.Name)
		})
	}
}

func TestWriteFieldErrorsAlwaysHasErrorsKey(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	httpx.WriteFieldErrors(rec, http.StatusUnauthorized, httpx.StatusBadRequest, "Authentication failed", nil)

	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t,
		`{"status":"Bad request","message":"Authentication failed","errors":{},"statusCode":401}`,
		rec.Body.String())
}
