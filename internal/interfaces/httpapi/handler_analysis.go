package httpapi

import (
	"fmt"
	"net/http"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

func (h *Handler) RunAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAnalysis")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	var req analysisRequest
	if err := h.decodeJSON(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.analysisService.Run(ctx, usecase.AnalysisInput{
		SessionID: sessionID,
		Mode:      req.Mode,
		Metric:    req.Metric,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run analysis failed", "session_id", sessionID, "mode", req.Mode, "metric", req.Metric, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, analysisToDTO(result))
}

func (h *Handler) RenderAnalysisChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenderAnalysisChart")
	defer span.End()

	result, ok := h.runFromQuery(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderChart(ctx, w, result); err != nil {
		h.logger.ErrorContext(ctx, "render chart failed", "session_id", result.SessionID, "error", err)
	}
}

func (h *Handler) ExportAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportAnalysis")
	defer span.End()

	result, ok := h.runFromQuery(w, r)
	if !ok {
		return
	}

	body, err := exportCSV(result)
	if err != nil {
		h.logger.ErrorContext(ctx, "export analysis failed", "session_id", result.SessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(result)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) runFromQuery(w http.ResponseWriter, r *http.Request) (usecase.AnalysisResult, bool) {
	ctx := r.Context()
	sessionID := r.PathValue("sessionID")
	query := r.URL.Query()

	result, err := h.analysisService.Run(ctx, usecase.AnalysisInput{
		SessionID: sessionID,
		Mode:      query.Get("mode"),
		Metric:    query.Get("metric"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run analysis failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return usecase.AnalysisResult{}, false
	}
	return result, true
}
