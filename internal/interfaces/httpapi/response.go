package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/metric"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/selection"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "nhl-stats-analyzer"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, err.Error()))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	mapped := mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, "internal server error"))
}

func errorEnvelope(mapped mappedError, msg string) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: msg,
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: msg,
				},
			},
		},
	}
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, metric.ErrUnknownMode),
		errors.Is(err, metric.ErrUnknownMetric):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "unknownMetric",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, selection.ErrSelectionLimit):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "selectionLimit",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, selection.ErrSelectionNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "selectionNotFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, selection.ErrSeasonUnavailable),
		errors.Is(err, selection.ErrNoSeasons),
		errors.Is(err, season.ErrInvalidSeason):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidSeason",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
