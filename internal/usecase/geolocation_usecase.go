package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"github.com/route-planner/internal/pkg/errors"
	"github.com/route-planner/internal/pkg/utils"
	"github.com/route-planner/internal/usecase/dto"
)

// LocationResolver превращает строку ввода в координату
type LocationResolver interface {
	Resolve(ctx context.Context, input string) (domain.Coordinate, error)
}

// GeolocationUseCase - разбор "lat,lng" и геокодирование адресов
type GeolocationUseCase struct {
	geocoder  repository.GeocodingRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewGeolocationUseCase - создание нового GeolocationUseCase
func NewGeolocationUseCase(
	geocoder repository.GeocodingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *GeolocationUseCase {
	return &GeolocationUseCase{
		geocoder:  geocoder,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// ParseLatLng разбирает литерал "lat,lng". ok=false, если строка не похожа
// на пару чисел; ошибка, если числа вне допустимого диапазона.
func ParseLatLng(input string) (domain.Coordinate, bool, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return domain.Coordinate{}, false, nil
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinate{}, false, nil
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinate{}, false, nil
	}

	if !utils.ValidateCoordinates(lat, lon) {
		return domain.Coordinate{}, true, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"input": input,
		})
	}
	return domain.Coordinate{Lat: lat, Lon: lon}, true, nil
}

// Resolve - литерал координат или первый кандидат геокодера
func (uc *GeolocationUseCase) Resolve(ctx context.Context, input string) (domain.Coordinate, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Coordinate{}, errors.ErrMalformedLocation
	}

	coord, ok, err := ParseLatLng(input)
	if err != nil {
		return domain.Coordinate{}, err
	}
	if ok {
		return coord, nil
	}

	candidates, err := uc.lookup(ctx, input)
	if err != nil {
		return domain.Coordinate{}, err
	}
	if len(candidates) == 0 {
		return domain.Coordinate{}, errors.ErrLocationNotFound.WithDetails(map[string]interface{}{
			"query": input,
		})
	}

	uc.logger.Debug("Location resolved",
		zap.String("query", input),
		zap.String("name", candidates[0].Name),
		zap.Float64("lat", candidates[0].Coordinate.Lat),
		zap.Float64("lon", candidates[0].Coordinate.Lon))
	return candidates[0].Coordinate, nil
}

// Geocode - список кандидатов для запроса
func (uc *GeolocationUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*dto.GeocodeResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.ErrMalformedLocation
	}

	if coord, ok, err := ParseLatLng(query); err != nil {
		return nil, err
	} else if ok {
		return &dto.GeocodeResponse{
			Query:      query,
			Candidates: []domain.GeocodeCandidate{{Name: query, Coordinate: coord}},
		}, nil
	}

	candidates, err := uc.lookup(ctx, query)
	if err != nil {
		return nil, err
	}

	return &dto.GeocodeResponse{
		Query:      query,
		Candidates: candidates,
	}, nil
}

// lookup - геокодирование через кеш; ошибки кеша не мешают запросу
func (uc *GeolocationUseCase) lookup(ctx context.Context, query string) ([]domain.GeocodeCandidate, error) {
	if cached, ok, err := uc.cacheRepo.GetGeocode(ctx, query); err != nil {
		uc.logger.Warn("Geocode cache read failed", zap.String("query", query), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	candidates, err := uc.geocoder.Geocode(ctx, query)
	if err != nil {
		uc.logger.Error("Geocoder failed", zap.String("query", query), zap.Error(err))
		return nil, errors.ErrGeocoderUnavailable
	}
	if candidates == nil {
		candidates = []domain.GeocodeCandidate{}
	}

	if len(candidates) > 0 {
		if err := uc.cacheRepo.SetGeocode(ctx, query, candidates, uc.cacheTTL); err != nil {
			uc.logger.Warn("Geocode cache write failed", zap.String("query", query), zap.Error(err))
		}
	}
	return candidates, nil
}
