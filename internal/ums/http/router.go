package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/internal/ums/store"
	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/aussiebroadwan/ums/pkg/jwtx"
	"github.com/aussiebroadwan/ums/pkg/slogx"

	_ "github.com/aussiebroadwan/ums/api/ums" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.SessionSigner
	hasher       session.PasswordHasher
	cookieSecure bool
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
}

func NewRouter(
	signer *jwtx.SessionSigner,
	hasher session.PasswordHasher,
	cookieSecure bool,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		hasher:       hasher,
		cookieSecure: cookieSecure,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccount()
	r.registerProfile()
	r.registerValidation()
	r.registerSystem()

	// API documentation - public rate limit
	r.Mux.Handle("/swagger/",
		httpx.Chain(httpSwagger.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			UMS Account Service API
//	@version		0.1.0
//	@description	User management: registration, login, session guarded profile editing and field validation.
//	@description
//	@description	Sessions are carried in the HttpOnly ums_session cookie set by register and login.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/ums
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						ums_session
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccount() {
	registerHandler := &RegisterHandler{router: r}
	loginHandler := &LoginHandler{router: r}
	logoutHandler := &LogoutHandler{router: r}

	// POST /register - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (credential guessing)
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /logout - moderate rate limit by session
	r.Mux.Handle("POST /v1/logout",
		httpx.Chain(logoutHandler,
			r.identify,
			httpx.RateLimitBySession(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{router: r}

	guarded := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			r.identify,
			httpx.RateLimitBySession(httpx.ModerateLimit),
			r.requireSession,
		)
	}

	r.Mux.Handle("GET /v1/profile", guarded(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PATCH /v1/profile", guarded(http.HandlerFunc(h.HandlePatch)))
}

func (r *Router) registerValidation() {
	// POST /validate - lenient rate limit, called on every keystroke
	r.Mux.Handle("POST /v1/validate",
		httpx.Chain(ValidateHandler(),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
