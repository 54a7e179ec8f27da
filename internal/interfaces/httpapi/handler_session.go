package httpapi

import (
	"net/http"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSession")
	defer span.End()

	state, err := h.sessionService.Create(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "create session failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(state))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	state, err := h.sessionService.Get(ctx, sessionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(state))
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSession")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	if err := h.sessionService.Delete(ctx, sessionID); err != nil {
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddSelection")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	var req addSelectionRequest
	if err := h.decodeJSON(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.AddSelection(ctx, usecase.AddSelectionInput{
		SessionID:  sessionID,
		PlayerID:   req.PlayerID,
		Name:       req.Name,
		TeamAbbrev: req.TeamAbbrev,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add selection failed", "session_id", sessionID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(state))
}

func (h *Handler) RemoveSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveSelection")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	index, err := pathIndex(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.RemoveSelection(ctx, sessionID, index)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(state))
}

func (h *Handler) ChangeSelectionSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChangeSelectionSeason")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	index, err := pathIndex(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req changeSeasonRequest
	if err := h.decodeJSON(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.ChangeSeason(ctx, sessionID, index, season.ID(req.Season))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(state))
}
