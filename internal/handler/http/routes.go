package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.metrics.Middleware)

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withControlToken)

		// long-lived event streams are not bound by the request timeout
		r.Get("/user/state/stream", h.streamUserState)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(h.timeout()))

			r.Get("/version", h.getVersion)

			r.Route("/user", func(r chi.Router) {
				r.Get("/state", h.getUserState)
				r.Post("/setup", h.setup)
				r.Get("/migrate", h.getMigrationStatus)
				r.Post("/migrate", h.migrate)
				r.Post("/pin", h.configurePIN)
				r.Post("/pin/verify", h.verifyPIN)
				r.Post("/pin/clear", h.clearPIN)
				r.Post("/lock", h.lock)
				r.Post("/unlock", h.unlock)
				r.Get("/auth", h.getAuthPrompt)
				r.Post("/auth", h.resolveAuthPrompt)
				r.Post("/wipe", h.wipe)
			})

			r.Route("/wallets", func(r chi.Router) {
				r.Get("/", h.getWallets)
				r.Put("/enabled", h.setEnabledWallets)
				r.Get("/{id}", h.getWallet)
				r.Get("/{id}/transfers", h.getTransfers)
				r.Get("/{id}/state", h.getWalletState)
				r.Post("/{id}/initialize", h.initializeWallet)
				r.Put("/{id}/mode", h.setWalletMode)
			})
		})
	})

	return router
}
