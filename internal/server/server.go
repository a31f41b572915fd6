package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/PackOpenSim_Go/internal/database"
	"github.com/osse101/PackOpenSim_Go/internal/handler"
	"github.com/osse101/PackOpenSim_Go/internal/metrics"
)

// Options configures the HTTP listener and its middleware.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Tracker        *ClientTracker
}

// Handlers groups the route handlers mounted under /api/v1.
type Handlers struct {
	Players      *handler.PlayerHandlers
	Shop         *handler.ShopHandlers
	Achievements *handler.AchievementHandlers
	Catalog      *handler.CatalogHandlers
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wraps it in an http.Server.
func NewServer(opts Options, dbPool database.Pool, h Handlers) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, h),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter returns the chi router serving the full API.
func NewRouter(opts Options, dbPool database.Pool, h Handlers) http.Handler {
	tracker := opts.Tracker
	if tracker == nil {
		tracker = NewClientTracker(DefaultTrackerWindow, DefaultMaxRequestsPerIP, DefaultFailedAuthAlertAt)
	}

	r := chi.NewRouter()

	// Outermost first
	r.Use(loggingMiddleware)
	r.Use(recoverMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, tracker))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, tracker))
	r.Use(middleware.RequestSize(DefaultMaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Post("/", h.Players.HandleRegister())

			r.Route("/{playerID}", func(r chi.Router) {
				r.Get("/", h.Players.HandleGetPlayer())
				r.Get("/history", h.Players.HandleGetHistory())

				r.Get("/packs", h.Players.HandleListPacks())
				r.Post("/packs", h.Shop.HandleBuyPack())
				r.Post("/packs/{packID}/open", h.Players.HandleOpenPack())

				r.Get("/cards", h.Players.HandleGetCollection())
				r.Post("/cards/{cardID}/sell", h.Shop.HandleSellCard())

				r.Get("/achievements", h.Achievements.HandleList())
				r.Post("/achievements/{achievementID}/claim", h.Achievements.HandleClaim())
			})
		})

		r.Get("/shop/packs", h.Shop.HandleListPackTypes())
		r.Get("/cards", h.Catalog.HandleListCards())
		r.Post("/admin/cards/import", h.Catalog.HandleImportCards())
	})

	return r
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, LogFieldAddr, s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
