package repository

import (
	"context"
	"time"

	"github.com/route-planner/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetTransitPaths получает закешированный ответ поиска маршрутов
	GetTransitPaths(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RawPath, bool, error)

	// SetTransitPaths сохраняет ответ поиска маршрутов
	SetTransitPaths(ctx context.Context, origin, destination domain.Coordinate, paths []domain.RawPath, ttl time.Duration) error

	// GetGeocode получает закешированный результат геокодирования
	GetGeocode(ctx context.Context, query string) ([]domain.GeocodeCandidate, bool, error)

	// SetGeocode сохраняет результат геокодирования
	SetGeocode(ctx context.Context, query string, candidates []domain.GeocodeCandidate, ttl time.Duration) error
}
