package odsay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/route-planner/internal/config"
	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const searchPath = "/searchPubTransPath"

// ProviderError - ошибка, которую ODsay вернул в теле ответа
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("odsay error %s: %s", e.Code, e.Message)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewODsayClient создает клиент поиска маршрутов общественного транспорта
func NewODsayClient(cfg *config.ODsayConfig, logger *zap.Logger) repository.TransitSearchRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: newLimiter(cfg.RateLimit, cfg.RateBurst),
		logger:  logger,
	}
}

type searchResponse struct {
	Result *struct {
		SearchType int              `json:"searchType"`
		Path       []domain.RawPath `json:"path"`
	} `json:"result"`
	Error json.RawMessage `json:"error"`
}

type errorBody struct {
	Code    json.RawMessage `json:"code"`
	Msg     string          `json:"msg"`
	Message string          `json:"message"`
}

// SearchPaths запрашивает варианты маршрута между двумя точками (WGS84)
func (c *client) SearchPaths(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RawPath, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("SX", formatCoord(origin.Lon))
	params.Set("SY", formatCoord(origin.Lat))
	params.Set("EX", formatCoord(destination.Lon))
	params.Set("EY", formatCoord(destination.Lat))
	params.Set("SearchType", "0")
	params.Set("OPT", "0")
	params.Set("lang", "0")
	params.Set("output", "json")
	params.Set("apiKey", c.apiKey)

	reqURL := c.baseURL + searchPath + "?" + params.Encode()

	c.logger.Debug("Calling ODsay searchPubTransPath",
		zap.Float64("origin_lat", origin.Lat),
		zap.Float64("origin_lon", origin.Lon),
		zap.Float64("dest_lat", destination.Lat),
		zap.Float64("dest_lon", destination.Lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ODsay request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("ODsay API returned error status",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("odsay API error: status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(sr.Error) > 0 && string(sr.Error) != "null" {
		perr := parseProviderError(sr.Error)
		c.logger.Warn("ODsay API returned error payload",
			zap.String("code", perr.Code),
			zap.String("message", perr.Message))
		return nil, perr
	}

	if sr.Result == nil {
		return []domain.RawPath{}, nil
	}

	c.logger.Debug("ODsay search successful", zap.Int("paths", len(sr.Result.Path)))
	return sr.Result.Path, nil
}

// parseProviderError разбирает ошибку: ODsay отдаёт и объект, и массив объектов
func parseProviderError(raw json.RawMessage) *ProviderError {
	var single errorBody
	if err := json.Unmarshal(raw, &single); err == nil {
		return toProviderError(single)
	}

	var list []errorBody
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return toProviderError(list[0])
	}

	return &ProviderError{Code: "unknown", Message: string(raw)}
}

func toProviderError(b errorBody) *ProviderError {
	code := string(b.Code)
	if unquoted, err := strconv.Unquote(code); err == nil {
		code = unquoted
	}
	msg := b.Msg
	if msg == "" {
		msg = b.Message
	}
	return &ProviderError{Code: code, Message: msg}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
