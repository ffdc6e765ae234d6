package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/pkg/httpx"
	"github.com/farmops/farmboard/pkg/slogx"
	"github.com/rs/cors"

	_ "github.com/farmops/farmboard/api/dashboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	jwtSecret    []byte
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	Projections *service.Projections

	RefreshService   *service.RefreshService
	AccountsService  *service.AccountsService
	CardsService     *service.CardsService
	ProxiesService   *service.ProxiesService
	CampaignsService *service.CampaignsService
	ExpensesService  *service.ExpensesService
	WorkspaceService *service.WorkspaceService
}

func NewRouter(
	jwtSecret []byte,
	issuer, buildVersion string,
	allowedOrigins []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		jwtSecret:    jwtSecret,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// The dashboard UI is a browser SPA on another origin, so CORS sits at
	// the outermost layer, before logging.
	corsLayer := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	r.middlewares = []httpx.Middleware{
		corsLayer.Handler,
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRefresh()
	r.registerAccounts()
	r.registerCards()
	r.registerProxies()
	r.registerCampaigns()
	r.registerExpenses()
	r.registerMetrics()
	r.registerWorkspace()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Farmboard Dashboard API
//	@version		0.1.0
//	@description	Domain store API for the farmboard advertising-operations dashboard:
//	@description	accounts, payment cards, proxies, campaigns, expenses and the shared
//	@description	team workspace, with role-scoped visibility and derived metrics.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token minted by the authentication service. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps h with authentication and a per-user rate limit.
func (r *Router) authed(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.jwtSecret, r.issuer),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerRefresh() {
	h := &RefreshHandler{RefreshService: r.RefreshService, Projections: r.Projections}
	r.Mux.Handle("POST /v1/refresh", r.authed(http.HandlerFunc(h.HandleRefresh), httpx.LenientLimit))
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{Accounts: r.AccountsService, Projections: r.Projections}

	r.Mux.Handle("GET /v1/accounts", r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/accounts", r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/accounts/{id}", r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/accounts/{id}", r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/accounts/{id}/comments", r.authed(http.HandlerFunc(h.HandleAddComment), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/accounts/{id}/backup-codes", r.authed(http.HandlerFunc(h.HandleBackupCodes), httpx.StrictLimit))
}

func (r *Router) registerCards() {
	h := &CardsHandler{Cards: r.CardsService, Projections: r.Projections}

	r.Mux.Handle("GET /v1/cards", r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/cards", r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/cards/{id}", r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/cards/{id}", r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/cards/{id}/assign", r.authed(http.HandlerFunc(h.HandleAssign), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/cards/{id}/unassign", r.authed(http.HandlerFunc(h.HandleUnassign), httpx.ModerateLimit))
}

func (r *Router) registerProxies() {
	h := &ProxiesHandler{Proxies: r.ProxiesService, Projections: r.Projections}

	r.Mux.Handle("GET /v1/proxies", r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/proxies", r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/proxies/{id}", r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/proxies/{id}", r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/proxies/{id}/assign", r.authed(http.HandlerFunc(h.HandleAssign), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/proxies/{id}/unassign", r.authed(http.HandlerFunc(h.HandleUnassign), httpx.ModerateLimit))
}

func (r *Router) registerCampaigns() {
	h := &CampaignsHandler{Campaigns: r.CampaignsService, Projections: r.Projections}

	r.Mux.Handle("GET /v1/campaigns", r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/campaigns", r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/campaigns/{id}", r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/campaigns/{id}", r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerExpenses() {
	h := &ExpensesHandler{Expenses: r.ExpensesService, Projections: r.Projections}

	r.Mux.Handle("GET /v1/expenses", r.authed(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/expenses", r.authed(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/expenses/{id}", r.authed(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/expenses/{id}", r.authed(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerMetrics() {
	h := &MetricsHandler{Projections: r.Projections}
	r.Mux.Handle("GET /v1/metrics", r.authed(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
}

func (r *Router) registerWorkspace() {
	h := &WorkspaceHandler{Workspace: r.WorkspaceService, Projections: r.Projections}

	r.Mux.Handle("GET /v1/workspace", r.authed(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))

	r.Mux.Handle("POST /v1/workspace/tasks", r.authed(http.HandlerFunc(h.HandleAddTask), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/workspace/tasks/{id}", r.authed(http.HandlerFunc(h.HandleUpdateTask), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/workspace/tasks/{id}", r.authed(http.HandlerFunc(h.HandleDeleteTask), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/workspace/tasks/{id}/comments", r.authed(http.HandlerFunc(h.HandleAddTaskComment), httpx.ModerateLimit))

	// Team membership is an admin/leader concern.
	r.Mux.Handle("POST /v1/workspace/team", httpx.Chain(http.HandlerFunc(h.HandleAddTeamMember),
		httpx.AuthnMiddleware(r.jwtSecret, r.issuer),
		httpx.RequireAnyRole("admin", "leader"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))
	r.Mux.Handle("DELETE /v1/workspace/team/{id}", httpx.Chain(http.HandlerFunc(h.HandleRemoveTeamMember),
		httpx.AuthnMiddleware(r.jwtSecret, r.issuer),
		httpx.RequireAnyRole("admin", "leader"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))

	r.Mux.Handle("POST /v1/workspace/channels", r.authed(http.HandlerFunc(h.HandleCreateChannel), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/workspace/channels/{id}", r.authed(http.HandlerFunc(h.HandleUpdateChannel), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/workspace/channels/{id}", r.authed(http.HandlerFunc(h.HandleDeleteChannel), httpx.ModerateLimit))

	r.Mux.Handle("POST /v1/workspace/messages", r.authed(http.HandlerFunc(h.HandlePostMessage), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/workspace/messages/{id}/reactions", r.authed(http.HandlerFunc(h.HandleAddReaction), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/workspace/messages/{id}/reactions", r.authed(http.HandlerFunc(h.HandleRemoveReaction), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
