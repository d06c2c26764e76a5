package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/qr-tracker/docs"
	"github.com/rogerio-castellano/qr-tracker/internal/http/handlers"
	mw "github.com/rogerio-castellano/qr-tracker/internal/http/middleware"
	rl "github.com/rogerio-castellano/qr-tracker/internal/http/rate_limiter"
)

type options struct {
	logger    *zap.Logger
	limiter   *rl.Limiter
	staticDir string
}

type Option func(*options)

// WithLogger sets the logger used for /api request logs. Defaults to zap.L().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRateLimiter throttles the write endpoints per client IP.
func WithRateLimiter(l *rl.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

// WithStaticDir serves a built single-page app from dir, falling back to index.html.
func WithStaticDir(dir string) Option {
	return func(o *options) { o.staticDir = dir }
}

func NewRouter(opts ...Option) http.Handler {
	o := options{logger: zap.L()}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(o.logger, "/api"))

	r.Get("/health", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		write := r
		if o.limiter != nil {
			write = r.With(mw.RateLimit(o.limiter))
		}

		r.Get("/scanned", handlers.GetScannedHandler)
		r.Get("/scanned/{qrId}", handlers.GetScannedByQrIDHandler)
		write.Post("/scanned", handlers.CreateScannedHandler)

		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/{productId}", handlers.GetProductHandler)
		r.Get("/products/{productId}/qr", handlers.GetProductQRHandler)
		write.Post("/products", handlers.CreateProductHandler)

		r.Get("/samples", handlers.GetSamplesHandler)
		r.Get("/metrics", handlers.DashboardMetricsHandler)
	})

	if o.staticDir != "" {
		r.Handle("/*", spaHandler(o.staticDir))
	}
	return r
}

// spaHandler serves files from dir and answers unknown paths with index.html so
// that client-side routes survive a reload.
func spaHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		if strings.HasPrefix(clean, "/api/") {
			http.NotFound(w, r)
			return
		}

		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean)))
		if err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		files.ServeHTTP(w, r)
	})
}
