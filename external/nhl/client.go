package nhl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/player"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/logging"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/resilience"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

const (
	DefaultBaseURL   = "https://api-web.nhle.com/v1"
	DefaultSearchURL = "https://search.d3.nhle.com/api/v1/search/player"

	defaultTimeout         = 10 * time.Second
	defaultRequestInterval = 100 * time.Millisecond
	searchLimit            = 15
	maxResponseBodySize    = 8 << 20
)

var errNHLTransient = crerr.New("nhl api transient failure")

var tracer = otel.Tracer("nhl-stats-analyzer/external/nhl")

type ClientConfig struct {
	HTTPClient      *fasthttp.Client
	BaseURL         string
	SearchURL       string
	Timeout         time.Duration
	RequestInterval time.Duration
	Logger          *logging.Logger
	CircuitBreaker  resilience.CircuitBreakerConfig
}

// Client reads the public NHL web and search APIs. Requests are paced by a
// token bucket, guarded by a circuit breaker and never retried.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	searchURL  string
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                     "nhl-stats-analyzer",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      maxResponseBodySize,
		}
	}

	interval := cfg.RequestInterval
	if interval <= 0 {
		interval = defaultRequestInterval
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	searchURL := strings.TrimRight(strings.TrimSpace(cfg.SearchURL), "/")
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}

	breaker := resilience.FromConfig(cfg.CircuitBreaker, func(from, to resilience.CircuitState) {
		logger.Warn("nhl circuit breaker state changed", "from", string(from), "to", string(to))
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		searchURL:  searchURL,
		timeout:    timeout,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		logger:     logger,
		breaker:    breaker,
	}
}

// SearchPlayers queries the player search index. Short queries return no
// hits without a request.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]player.Summary, error) {
	query, ok := player.NormalizeQuery(query)
	if !ok {
		return []player.Summary{}, nil
	}

	values := url.Values{}
	values.Set("culture", "en-us")
	values.Set("limit", strconv.Itoa(searchLimit))
	values.Set("q", query)

	var hits []searchHit
	if err := c.doJSON(ctx, "nhl.SearchPlayers", c.searchURL+"?"+values.Encode(), &hits); err != nil {
		return nil, err
	}

	out := make([]player.Summary, 0, min(len(hits), player.MaxSearchResults))
	for _, hit := range hits {
		if len(out) == player.MaxSearchResults {
			break
		}
		if hit.PlayerID <= 0 {
			continue
		}
		out = append(out, hit.toSummary())
	}
	return out, nil
}

func (c *Client) GetPlayerDetails(ctx context.Context, playerID int64) (player.Profile, error) {
	var landing playerLanding
	fullURL := fmt.Sprintf("%s/player/%d/landing", c.baseURL, playerID)
	if err := c.doJSON(ctx, "nhl.GetPlayerDetails", fullURL, &landing); err != nil {
		return player.Profile{}, err
	}

	profile := landing.toProfile()
	if profile.ID == 0 {
		profile.ID = playerID
	}
	return profile, nil
}

// GetGameLog returns the regular-season game log. A payload without a
// gameLog key yields no games.
func (c *Client) GetGameLog(ctx context.Context, playerID int64, seasonID season.ID) ([]gamelog.RawGame, error) {
	var payload gameLogResponse
	fullURL := fmt.Sprintf("%s/player/%d/game-log/%s/%d", c.baseURL, playerID, seasonID, season.RegularSeasonGameType)
	if err := c.doJSON(ctx, "nhl.GetGameLog", fullURL, &payload); err != nil {
		return nil, err
	}

	out := make([]gamelog.RawGame, 0, len(payload.GameLog))
	for _, item := range payload.GameLog {
		out = append(out, item.toRawGame())
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, op, fullURL string, target any) error {
	ctx, span := tracer.Start(ctx, op)
	span.SetAttributes(attribute.String("http.url", fullURL))
	defer span.End()

	out, err, shared := c.flight.Do(fullURL, func() (any, error) {
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isCircuitFailure)
		return raw, execErr
	})
	span.SetAttributes(attribute.Bool("nhl.shared", shared))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return c.classify(ctx, fullURL, err)
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode nhl payload: %v", usecase.ErrDependencyUnavailable, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errNHLTransient, err)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	switch {
	case status >= 200 && status < 300:
		return body, nil
	case status == fasthttp.StatusNotFound:
		return nil, fmt.Errorf("%w: nhl status=%d", usecase.ErrNotFound, status)
	case status == fasthttp.StatusTooManyRequests || status >= 500:
		return nil, fmt.Errorf("%w: nhl status=%d body=%s", errNHLTransient, status, abbreviateBody(body))
	default:
		return nil, fmt.Errorf("nhl status=%d body=%s", status, abbreviateBody(body))
	}
}

func (c *Client) classify(ctx context.Context, fullURL string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return err
	case errors.Is(err, resilience.ErrCircuitOpen):
		c.logger.WarnContext(ctx, "nhl circuit breaker rejected request", "url", fullURL, "state", string(c.breaker.State()))
		return fmt.Errorf("%w: nhl api is temporarily unavailable", usecase.ErrDependencyUnavailable)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
	default:
		c.logger.WarnContext(ctx, "nhl request failed", "url", fullURL, "error", err)
		return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
	}
}

func isCircuitFailure(err error) bool {
	return errors.Is(err, errNHLTransient)
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
