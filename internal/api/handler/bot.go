package handler

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"github.com/linesgame/linesim/internal/api/apierr"
	"github.com/linesgame/linesim/internal/api/request"
	"github.com/linesgame/linesim/internal/api/response"
	"github.com/linesgame/linesim/internal/model"
	"github.com/linesgame/linesim/internal/services/bot"
)

// BotHandler handles bot play endpoints
type BotHandler struct {
	botService *bot.Service
}

// NewBotHandler creates a new bot handler
func NewBotHandler(botService *bot.Service) *BotHandler {
	return &BotHandler{botService: botService}
}

// Strategies handles GET /api/v1/strategies
func (h *BotHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	names := h.botService.Strategies()
	sort.Strings(names)
	response.JSON(w, http.StatusOK, response.Strategies{Strategies: names})
}

// PlayMove handles POST /api/v1/sessions/{id}/bot/move
func (h *BotHandler) PlayMove(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.BotMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.Strategy == "" {
		req.Strategy = bot.StrategyGreedy
	}

	played, err := h.botService.PlayMove(r.Context(), id, req.Strategy)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BotMove{
		Strategy: req.Strategy,
		Move:     response.MoveFromModel(played.Move),
		Result:   response.MoveResultFromModel(played.Result),
	})
}

// PlayOut handles POST /api/v1/sessions/{id}/bot/playout
func (h *BotHandler) PlayOut(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.BotPlayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.Strategy == "" {
		req.Strategy = bot.StrategyGreedy
	}

	result, err := h.botService.PlayOut(r.Context(), id, req.Strategy, req.MaxMoves)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BotPlayout{
		Strategy:    req.Strategy,
		MovesPlayed: result.MovesPlayed,
		FinalScore:  result.FinalScore,
		GameOver:    result.GameOver,
	})
}
