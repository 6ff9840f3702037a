package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"

	_ "github.com/aussiebroadwan/tracker/api/tracker" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// VerifyRedirect is where a clicked verification link lands.
	VerifyRedirect string

	Policy              *service.ApprovalPolicy
	AccountService      *service.AccountService
	ApprovalService     *service.ApprovalService
	TwoFactorService    *service.TwoFactorService
	TokenService        *service.TokenService
	CleanupService      *service.CleanupService
	HousekeepingService *service.HousekeepingService
	TaskService         *service.TaskService
	KPIService          *service.KPIService
	PermissionService   *service.PermissionService
	AuditService        *service.AuditService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		keys:           keys,
		verifier:       verifier,
		buildVersion:   buildVersion,
		startTime:      time.Now(),
		store:          st,
		logger:         logger,
		VerifyRedirect: "/login?verified=true",
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSessions()
	r.registerTwoFactor()
	r.registerMe()
	r.registerAdmin()
	r.registerTasks()
	r.registerKPIs()
	r.registerPermissions()
	r.registerAudit()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tracker API
//	@version		0.1.0
//	@description	Team task and KPI tracker with domain-gated registration, admin approval and emailed two-factor codes.
//	@description
//	@description				Access tokens are short lived JWTs and can be verified using the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/tracker
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

// authed verifies the bearer token.
func (r *Router) authed(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

// gated additionally requires an approved, verified profile.
func (r *Router) gated(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		r.requireAccess(),
		httpx.RateLimitByUser(limit),
	)
}

// admin requires the administrator email backed by a verified account.
func (r *Router) admin(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireEmail(r.Policy.IsAdmin),
		r.requireAdmin(),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{AccountService: r.AccountService, VerifyRedirect: r.VerifyRedirect}

	// Public signup endpoints - strict rate limit by IP + email to slow enumeration
	r.Mux.Handle("POST /v1/accounts",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/accounts/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /v1/accounts/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyLink),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/accounts/verify/resend",
		httpx.Chain(http.HandlerFunc(h.HandleResend),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{AccountService: r.AccountService, TokenService: r.TokenService}

	// POST /sessions - strict rate limit by IP + email to prevent brute force
	r.Mux.Handle("POST /v1/sessions",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/sessions/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/sessions/revoke", r.authed(http.HandlerFunc(h.HandleRevoke), httpx.ModerateLimit))
}

func (r *Router) registerTwoFactor() {
	h := &TwoFactorHandler{TwoFactorService: r.TwoFactorService}

	// Code entry - strict rate limit by IP + challenge (attempts are also capped per challenge)
	r.Mux.Handle("POST /v1/2fa/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "challenge"),
		),
	)
	r.Mux.Handle("POST /v1/2fa/resend",
		httpx.Chain(http.HandlerFunc(h.HandleResend),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "challenge"),
		),
	)
	// Countdown polled by the code entry screen
	r.Mux.Handle("GET /v1/2fa/remaining",
		httpx.Chain(http.HandlerFunc(h.HandleRemaining),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/2fa", r.gated(http.HandlerFunc(h.HandleToggle), httpx.ModerateLimit))
}

func (r *Router) registerMe() {
	h := &MeHandler{
		AccountService:  r.AccountService,
		ApprovalService: r.ApprovalService,
		store:           r.store,
	}

	// Not gated: blocked users read their access decision here
	r.Mux.Handle("GET /v1/me", r.authed(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/me", r.authed(http.HandlerFunc(h.HandleDelete), httpx.StrictLimit))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{
		Policy:              r.Policy,
		ApprovalService:     r.ApprovalService,
		CleanupService:      r.CleanupService,
		HousekeepingService: r.HousekeepingService,
		TaskService:         r.TaskService,
	}

	r.Mux.Handle("GET /v1/admin/users", r.admin(http.HandlerFunc(h.HandleListUsers), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/approvals", r.admin(http.HandlerFunc(h.HandlePending), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/admin/users/{uid}/approve", r.admin(http.HandlerFunc(h.HandleApprove), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/admin/users/{uid}/reject", r.admin(http.HandlerFunc(h.HandleReject), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/admin/orphans", r.admin(http.HandlerFunc(h.HandleOrphans), httpx.StrictLimit))
	r.Mux.Handle("POST /v1/admin/housekeeping", r.admin(http.HandlerFunc(h.HandleHousekeeping), httpx.StrictLimit))
	r.Mux.Handle("GET /v1/admin/stats", r.admin(http.HandlerFunc(h.HandleTeamStats), httpx.ModerateLimit))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	r.Mux.Handle("GET /v1/tasks", r.gated(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/tasks", r.gated(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/tasks/stats", r.gated(http.HandlerFunc(h.HandleStats), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/tasks/{id}", r.gated(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/tasks/{id}", r.gated(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerKPIs() {
	h := &KPIsHandler{Policy: r.Policy, KPIService: r.KPIService, AuditService: r.AuditService}

	r.Mux.Handle("GET /v1/kpis", r.gated(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/kpis", r.gated(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/kpis/summary", r.gated(http.HandlerFunc(h.HandleSummary), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/kpis/{id}", r.gated(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/kpis/{id}", r.gated(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/kpis/{id}", r.gated(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/kpis/{id}/history", r.gated(http.HandlerFunc(h.HandleHistory), httpx.LenientLimit))
}

func (r *Router) registerPermissions() {
	h := &PermissionsHandler{Policy: r.Policy, PermissionService: r.PermissionService}

	r.Mux.Handle("GET /v1/permissions", r.gated(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/permissions/editable", r.gated(http.HandlerFunc(h.HandleEditable), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/permissions/{column}", r.admin(http.HandlerFunc(h.HandleSet), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/permissions/{column}", r.admin(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerAudit() {
	h := &AuditHandler{AuditService: r.AuditService}

	r.Mux.Handle("GET /v1/audit", r.gated(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/audit/stats", r.gated(http.HandlerFunc(h.HandleStats), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/audit/export", r.gated(http.HandlerFunc(h.HandleExport), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /jwks.json - public endpoint with high limit
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
