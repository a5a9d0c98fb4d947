package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/normalhq/chatbox/server/internal/handler/chat"
	"github.com/normalhq/chatbox/server/internal/handler/stats"
	"github.com/normalhq/chatbox/server/internal/metrics"
	middlewarePkg "github.com/normalhq/chatbox/server/internal/middleware"
	chatservice "github.com/normalhq/chatbox/server/internal/service/chat"
	"github.com/normalhq/chatbox/server/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatservice.Service, recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chathandler.New(chatSvc)
	statsHandler := stats.New(recorder)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		chatHandler.RegisterRoutes(api)
		statsHandler.RegisterRoutes(api)
	})

	return r
}
