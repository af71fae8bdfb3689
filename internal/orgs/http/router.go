package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/orgs/internal/orgs/service"
	"github.com/aussiebroadwan/orgs/internal/orgs/store"
	"github.com/aussiebroadwan/orgs/pkg/httpx"
	"github.com/aussiebroadwan/orgs/pkg/jwtx"
	"github.com/aussiebroadwan/orgs/pkg/otelx"
	"github.com/aussiebroadwan/orgs/pkg/slogx"

	_ "github.com/aussiebroadwan/orgs/api/orgs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeyManager
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	Guard             *service.Guard
	AccountService    *service.AccountService
	TokenService      *service.TokenService
	MembershipService *service.MembershipService
	UserService       *service.UserService
}

func NewRouter(
	keys *jwtx.KeyManager,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Tracing outermost so the span covers logging and recovery.
	r.middlewares = []httpx.Middleware{
		otelx.HTTPMiddleware("orgs"),
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTokens()
	r.registerOrganisations()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", NotFoundHandler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Organisations API
//	@version		0.1.0
//	@description	Multi-tenant user and organisation service. Users register or log in to receive a JWT access token
//	@description	and can see only the organisations they own or belong to.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/orgs
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authenticated wraps h with bearer token authentication via the Guard.
func (r *Router) authenticated(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(func(raw string) (jwtx.Claims, error) {
		id, err := r.Guard.Authenticate(raw)
		return id.Claims, err
	}))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AccountService: r.AccountService}

	r.Mux.HandleFunc("POST /auth/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /auth/login", h.HandleLogin)
}

func (r *Router) registerTokens() {
	h := &TokenHandler{AccountService: r.AccountService, TokenService: r.TokenService}

	r.Mux.HandleFunc("POST /api/token/{$}", h.HandleObtain)
	r.Mux.HandleFunc("POST /api/token/refresh/{$}", h.HandleRefresh)
}

func (r *Router) registerOrganisations() {
	h := &OrganisationsHandler{MembershipService: r.MembershipService}

	r.Mux.Handle("GET /api/organisations", r.authenticated(h.HandleList))
	r.Mux.Handle("POST /api/organisations", r.authenticated(h.HandleCreate))
	r.Mux.Handle("GET /api/organisations/{orgId}", r.authenticated(h.HandleGet))
	r.Mux.Handle("POST /api/organisations/{orgId}/users", r.authenticated(h.HandleAddMember))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/users/{userId}", r.authenticated(h.HandleGet))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
	r.Mux.Handle("GET /.well-known/jwks.json", JWKSHandler(r.keys))
}
