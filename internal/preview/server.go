package preview

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/goliatone/go-formhelpers/pkg/locale"
)

// LocaleParam is the query parameter that selects the page locale.
const LocaleParam = "locale"

// NewHandler serves the fixture at "/" and a liveness probe at "/healthz".
func NewHandler(renderer *Renderer, fixture Fixture, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		code := RequestLocale(req, renderer.Locales())

		var buf bytes.Buffer
		if err := renderer.Render(&buf, fixture, code); err != nil {
			logger.Error("preview render failed",
				zap.String("request_id", middleware.GetReqID(req.Context())),
				zap.String("locale", code),
				zap.Error(err),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Language", code)
		_, _ = buf.WriteTo(w)
	})

	return r
}

// RequestLocale picks the locale from the query string when it names a
// configured locale, and from Accept-Language otherwise.
func RequestLocale(req *http.Request, locales locale.Static) string {
	if code := strings.TrimSpace(req.URL.Query().Get(LocaleParam)); locale.Contains(code, locales) {
		return code
	}
	return locales.Match(req.Header.Get("Accept-Language"))
}
