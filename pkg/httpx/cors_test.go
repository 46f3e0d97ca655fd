package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newCORSHandler(prefix string) http.Handler {
	return CORS(CORSConfig{
		AllowOrigin:     "*",
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Content-Type"},
		ExposeHeaders:   []string{"Location"},
		PreflightPrefix: prefix,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
}

func TestCORS(t *testing.T) {
	h := newCORSHandler("/api/things")

	send := func(method, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		return rec
	}

	t.Run("headers attached to every response", func(t *testing.T) {
		rec := send(http.MethodGet, "/api/things/1")
		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "GET, POST", rec.Header().Get("Access-Control-Allow-Methods"))
		require.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
		require.Equal(t, "Location", rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("preflight under prefix short-circuits", func(t *testing.T) {
		for _, target := range []string{"/api/things", "/api/things/", "/api/things/42/deep"} {
			rec := send(http.MethodOptions, target)
			require.Equal(t, http.StatusOK, rec.Code, target)
			require.Empty(t, rec.Body.String(), target)
		}
	})

	t.Run("preflight outside prefix passes through", func(t *testing.T) {
		rec := send(http.MethodOptions, "/other")
		require.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("lookalike prefix is not under the prefix", func(t *testing.T) {
		rec := send(http.MethodOptions, "/api/thingsandmore")
		require.Equal(t, http.StatusTeapot, rec.Code)
	})
}
