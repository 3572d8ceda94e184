package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linesgame/linesim/internal/api/apierr"
	"github.com/linesgame/linesim/internal/api/request"
	"github.com/linesgame/linesim/internal/api/response"
	"github.com/linesgame/linesim/internal/model"
	"github.com/linesgame/linesim/internal/services/session"
)

// SessionHandler handles session lifecycle and move endpoints
type SessionHandler struct {
	sessions session.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions session.ControllerInterface) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
			return
		}
	}

	sess, err := h.sessions.CreateSession(r.Context(), configFromRequest(req), req.Seed)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(sess))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.sessions.ListSessions(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	response.JSON(w, http.StatusOK, response.SessionList{Sessions: out})
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	sess, err := h.sessions.GetSession(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	// Surface 404 for unknown sessions rather than silently succeeding
	if _, err := h.sessions.GetSession(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.sessions.DeleteSession(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// GetState handles GET /api/v1/sessions/{id}/state
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	state, err := h.sessions.GetState(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(state))
}

// ValidMoves handles GET /api/v1/sessions/{id}/moves
func (h *SessionHandler) ValidMoves(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	moves, err := h.sessions.ValidMoves(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ValidMovesFromModel(moves))
}

// ExecuteMove handles POST /api/v1/sessions/{id}/moves
func (h *SessionHandler) ExecuteMove(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	move := model.Move{
		From: model.Position{Row: req.FromRow, Col: req.FromCol},
		To:   model.Position{Row: req.ToRow, Col: req.ToCol},
	}

	result, err := h.sessions.ExecuteMove(r.Context(), id, move)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResultFromModel(result))
}

// Reset handles POST /api/v1/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	sess, err := h.sessions.ResetSession(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// configFromRequest merges a create request onto the default rules
func configFromRequest(req request.CreateSessionRequest) model.GameConfig {
	cfg := model.DefaultConfig()
	if req.Rows > 0 {
		cfg.Rows = req.Rows
	}
	if req.Cols > 0 {
		cfg.Cols = req.Cols
	}
	if req.ColorsCount > 0 {
		cfg.ColorsCount = req.ColorsCount
	}
	if req.MatchLength > 0 {
		cfg.MatchLength = req.MatchLength
	}
	if req.BallsPerTurn > 0 {
		cfg.BallsPerTurn = req.BallsPerTurn
	}
	if req.InitialBalls > 0 {
		cfg.InitialBalls = req.InitialBalls
	}
	if req.HideNextBalls {
		cfg.ShowNextBalls = false
	}
	return cfg
}
