package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/logging"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

type Handler struct {
	playerService   *usecase.PlayerService
	sessionService  *usecase.SessionService
	analysisService *usecase.AnalysisService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	sessionService *usecase.SessionService,
	analysisService *usecase.AnalysisService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:   playerService,
		sessionService:  sessionService,
		analysisService: analysisService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads a request body, rejecting unknown fields, and validates it.
func (h *Handler) decodeJSON(ctx context.Context, body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func pathIndex(r *http.Request) (int, error) {
	value, err := pathInt64(r, "index")
	if err != nil {
		return 0, err
	}
	return int(value), nil
}
