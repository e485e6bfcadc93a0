package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/route-planner/internal/config"
	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	addressSearchPath = "/v2/local/search/address.json"
	keywordSearchPath = "/v2/local/search/keyword.json"
	maxResults        = 5
)

type client struct {
	httpClient *http.Client
	baseURL    string
	restKey    string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewKakaoClient создает клиент геокодирования Kakao Local API
func NewKakaoClient(cfg *config.KakaoConfig, logger *zap.Logger) repository.GeocodingRepository {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		restKey: cfg.RESTKey,
		limiter: limiter,
		logger:  logger,
	}
}

type document struct {
	AddressName     string           `json:"address_name"`
	PlaceName       string           `json:"place_name"`
	RoadAddressName string           `json:"road_address_name"`
	X               domain.FlexFloat `json:"x"`
	Y               domain.FlexFloat `json:"y"`
}

type searchResponse struct {
	Documents []document `json:"documents"`
}

// Geocode ищет адрес, а если адрес не найден - место по ключевому слову
func (c *client) Geocode(ctx context.Context, query string) ([]domain.GeocodeCandidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.GeocodeCandidate{}, nil
	}

	docs, err := c.search(ctx, addressSearchPath, query)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		docs, err = c.search(ctx, keywordSearchPath, query)
		if err != nil {
			return nil, err
		}
	}

	candidates := make([]domain.GeocodeCandidate, 0, len(docs))
	for _, d := range docs {
		coord := domain.Coordinate{Lat: d.Y.Float64(), Lon: d.X.Float64()}
		if !coord.IsValid() || (coord.Lat == 0 && coord.Lon == 0) {
			continue
		}

		name := d.PlaceName
		if name == "" {
			name = d.AddressName
		}
		address := d.RoadAddressName
		if address == "" {
			address = d.AddressName
		}

		candidates = append(candidates, domain.GeocodeCandidate{
			Name:       name,
			Address:    address,
			Coordinate: coord,
		})
	}

	c.logger.Debug("Kakao geocode finished",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)))

	return candidates, nil
}

func (c *client) search(ctx context.Context, path, query string) ([]document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("size", fmt.Sprintf("%d", maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.restKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Kakao request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("Kakao API returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("kakao API error: status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return sr.Documents, nil
}
