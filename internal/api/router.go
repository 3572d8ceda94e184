package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linesgame/linesim/internal/api/handler"
	"github.com/linesgame/linesim/internal/api/middleware"
	"github.com/linesgame/linesim/internal/services/bot"
	"github.com/linesgame/linesim/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController session.ControllerInterface
	BotService        *bot.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	botHandler := handler.NewBotHandler(cfg.BotService)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/state", sessionHandler.GetState).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/moves", sessionHandler.ValidMoves).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/moves", sessionHandler.ExecuteMove).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/reset", sessionHandler.Reset).Methods(http.MethodPost)

	// Bot routes
	api.HandleFunc("/strategies", botHandler.Strategies).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/bot/move", botHandler.PlayMove).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/bot/playout", botHandler.PlayOut).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
