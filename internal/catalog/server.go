package catalog

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:embed products.json
var defaultCatalog []byte

// DefaultCatalog returns the embedded demo catalog JSON.
func DefaultCatalog() []byte { return defaultCatalog }

// NewServer returns an http.Handler serving the catalog JSON at the fixed
// relative path, for local development and tests. When data is nil the
// embedded demo catalog is served.
func NewServer(data []byte, logger *zap.Logger) http.Handler {
	if data == nil {
		data = defaultCatalog
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get(Path, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(data); err != nil {
			logger.Warn("catalog write failed", zap.Error(err))
		}
	})
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
