package httpx

import (
	"net/http"
	"strings"
)

// CORSConfig controls the headers attached by the CORS middleware.
type CORSConfig struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin on every response.
	AllowOrigin string
	// AllowMethods and AllowHeaders are joined with ", " into the
	// corresponding Access-Control headers.
	AllowMethods []string
	AllowHeaders []string
	// ExposeHeaders lists response headers browsers may read (e.g. Location).
	ExposeHeaders []string
	// PreflightPrefix, when non-empty, makes the middleware answer OPTIONS
	// requests whose path falls under the prefix with an empty 200 before
	// the request reaches the router. OPTIONS outside the prefix passes
	// through and falls to whatever the router decides (normally 404).
	PreflightPrefix string
}

// CORS attaches permissive cross-origin headers to every response and
// short-circuits preflight requests under the configured prefix.
func CORS(cfg CORSConfig) Middleware {
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
			if allowMethods != "" {
				h.Set("Access-Control-Allow-Methods", allowMethods)
			}
			if allowHeaders != "" {
				h.Set("Access-Control-Allow-Headers", allowHeaders)
			}
			if exposeHeaders != "" {
				h.Set("Access-Control-Expose-Headers", exposeHeaders)
			}

			if r.Method == http.MethodOptions && cfg.PreflightPrefix != "" &&
				underPrefix(r.URL.Path, cfg.PreflightPrefix) {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// underPrefix matches the prefix itself, the prefix with a trailing slash and
// any deeper path. "/api/clientsfoo" is not under "/api/clients".
func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
