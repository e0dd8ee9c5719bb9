package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/app/config"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/app/http/handlers"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)

	r.Get("/health", h.Health)
	r.Post("/callback", h.LineWebhook)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/quotes", h.CreateQuote)
		})
	})

	return r
}
