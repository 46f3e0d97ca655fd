package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/6Ash6/TPIS-CRM-model/internal/service"
	"github.com/6Ash6/TPIS-CRM-model/internal/store"
	"github.com/6Ash6/TPIS-CRM-model/pkg/httpx"
	"github.com/6Ash6/TPIS-CRM-model/pkg/slogx"
)

// APIPrefix is the fixed path prefix all client routes live under. Requests
// outside it get a JSON 404.
const APIPrefix = "/api/clients"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	maxBodyBytes int64

	ClientService *service.ClientService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	maxBodyBytes int64,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		maxBodyBytes: maxBodyBytes,
	}

	// Global middleware chain. CORS runs inside the logger so preflights
	// show up in the access log; it also answers OPTIONS under the API
	// prefix before any routing happens.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(httpx.CORSConfig{
			AllowOrigin:     "*",
			AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Content-Type"},
			ExposeHeaders:   []string{"Location"},
			PreflightPrefix: APIPrefix,
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerSystem()

	// Everything that matches no route above, API prefix or not, is a
	// plain JSON 404. Unknown paths under the prefix land here too.
	r.Mux.Handle("/", http.HandlerFunc(handleNotFound))
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{
		ClientService: r.ClientService,
		MaxBodyBytes:  r.maxBodyBytes,
	}

	list := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	create := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)
	get := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	update := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)
	del := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)

	// The collection answers with and without the trailing slash.
	r.Mux.Handle("GET "+APIPrefix, list)
	r.Mux.Handle("GET "+APIPrefix+"/{$}", list)
	r.Mux.Handle("POST "+APIPrefix, create)
	r.Mux.Handle("POST "+APIPrefix+"/{$}", create)

	r.Mux.Handle("GET "+APIPrefix+"/{id}", get)
	r.Mux.Handle("PATCH "+APIPrefix+"/{id}", update)
	r.Mux.Handle("DELETE "+APIPrefix+"/{id}", del)

	// Known paths with an unhandled method are a 405, not a silent pass.
	// OPTIONS never reaches these; the CORS middleware answers it first.
	collectionMethods := "GET, OPTIONS, POST"
	itemMethods := "DELETE, GET, OPTIONS, PATCH"
	r.Mux.Handle(APIPrefix, handleMethodNotAllowed(collectionMethods))
	r.Mux.Handle(APIPrefix+"/{$}", handleMethodNotAllowed(collectionMethods))
	r.Mux.Handle(APIPrefix+"/{id}", handleMethodNotAllowed(itemMethods))
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
