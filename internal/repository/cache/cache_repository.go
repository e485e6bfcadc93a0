package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// TransitKey - ключ кеша ответа поиска маршрутов, координаты с 6 знаками
func TransitKey(origin, destination domain.Coordinate) string {
	return fmt.Sprintf("transit:%.6f,%.6f:%.6f,%.6f",
		origin.Lat, origin.Lon, destination.Lat, destination.Lon)
}

// GeocodeKey - ключ кеша геокодирования, запрос без регистра и крайних пробелов
func GeocodeKey(query string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(query))
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Cache miss", zap.String("key", key))
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) GetTransitPaths(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RawPath, bool, error) {
	var paths []domain.RawPath
	ok, err := r.getJSON(ctx, TransitKey(origin, destination), &paths)
	return paths, ok, err
}

func (r *cacheRepository) SetTransitPaths(ctx context.Context, origin, destination domain.Coordinate, paths []domain.RawPath, ttl time.Duration) error {
	return r.setJSON(ctx, TransitKey(origin, destination), paths, ttl)
}

func (r *cacheRepository) GetGeocode(ctx context.Context, query string) ([]domain.GeocodeCandidate, bool, error) {
	var candidates []domain.GeocodeCandidate
	ok, err := r.getJSON(ctx, GeocodeKey(query), &candidates)
	return candidates, ok, err
}

func (r *cacheRepository) SetGeocode(ctx context.Context, query string, candidates []domain.GeocodeCandidate, ttl time.Duration) error {
	return r.setJSON(ctx, GeocodeKey(query), candidates, ttl)
}

// getJSON возвращает false при промахе; повреждённая запись удаляется и считается промахом
func (r *cacheRepository) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Warn("Dropping corrupted cache entry", zap.String("key", key), zap.Error(err))
		_ = r.Delete(ctx, key)
		return false, nil
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	return r.Set(ctx, key, data, ttl)
}
