package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"wordreader/internal/api/handlers"
	"wordreader/internal/api/middleware"
	"wordreader/internal/service"
)

// jsonBodyLimit applies to every route except the upload
const jsonBodyLimit = 1 << 20

// Services are the application services exposed over HTTP
type Services struct {
	Vocabulary *service.VocabularyService
	Lookup     *service.LookupService
	Library    *service.LibraryService
	Stats      *service.StatsService
}

// Options configure the HTTP surface
type Options struct {
	AllowedOrigins []string
	MaxUploadBytes int64
}

func NewRouter(svc Services, opts Options, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(cors.Handler(middleware.CORSOptions(opts.AllowedOrigins)))

	// Handlers
	readerHandler := handlers.NewReaderHandler(svc.Library, svc.Lookup, opts.MaxUploadBytes, logger)
	gutenbergHandler := handlers.NewGutenbergHandler(svc.Library)
	wordsHandler := handlers.NewWordsHandler(svc.Vocabulary)
	statsHandler := handlers.NewStatsHandler(svc.Stats)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		// Uploads carry their own limit
		r.Post("/upload", readerHandler.Upload)

		r.Group(func(r chi.Router) {
			r.Use(middleware.MaxBodySize(jsonBodyLimit))

			// Reading
			r.Post("/translate", readerHandler.Translate)
			r.Post("/lookup", readerHandler.Lookup)
			r.Get("/languages", statsHandler.Languages)

			// Gutenberg
			r.Get("/gutenberg/search", gutenbergHandler.Search)
			r.Post("/gutenberg/import", gutenbergHandler.Import)

			// Vocabulary
			r.Get("/words", wordsHandler.List)
			r.Post("/words", wordsHandler.Add)
			r.Get("/words/lookup", wordsHandler.Lookup)
			r.Post("/words/{id}/status", wordsHandler.UpdateStatus)
			r.Delete("/words/{id}", wordsHandler.Remove)

			r.Get("/stats", statsHandler.Stats)
		})
	})

	return r
}

// NewServer wraps the router in an http.Server listening on addr
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
