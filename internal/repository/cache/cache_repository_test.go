package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"github.com/route-planner/internal/repository/cache"
)

func getTestCache(t *testing.T) (repository.CacheRepository, *redis.Client) {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return cache.NewCacheRepository(cache.NewRedisFromClient(client, zap.NewNop())), client
}

func TestTransitKey(t *testing.T) {
	key := cache.TransitKey(
		domain.Coordinate{Lat: 37.5, Lon: 127.0},
		domain.Coordinate{Lat: 37.51, Lon: 127.01},
	)
	assert.Equal(t, "transit:37.500000,127.000000:37.510000,127.010000", key)
}

func TestGeocodeKey(t *testing.T) {
	assert.Equal(t, "geocode:강남역", cache.GeocodeKey("  강남역 "))
	assert.Equal(t, "geocode:seoul station", cache.GeocodeKey("Seoul Station"))
}

func TestCacheRepository_TransitPaths(t *testing.T) {
	repo, client := getTestCache(t)
	ctx := context.Background()
	origin := domain.Coordinate{Lat: 37.497942, Lon: 127.027621}
	dest := domain.Coordinate{Lat: 37.554648, Lon: 126.972559}
	defer client.Del(ctx, cache.TransitKey(origin, dest))

	_, ok, err := repo.GetTransitPaths(ctx, origin, dest)
	require.NoError(t, err)
	assert.False(t, ok)

	paths := []domain.RawPath{{
		PathType: 1,
		SubPath: []domain.RawSubPath{
			{TrafficType: domain.TrafficTypeWalk, SectionTime: 3, Distance: 200},
			{TrafficType: domain.TrafficTypeSubway, SectionTime: 20, Distance: 8000},
		},
	}}
	require.NoError(t, repo.SetTransitPaths(ctx, origin, dest, paths, time.Minute))

	got, ok, err := repo.GetTransitPaths(ctx, origin, dest)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, got, 1)
	require.Len(t, got[0].SubPath, 2)
	assert.Equal(t, domain.TrafficTypeSubway, got[0].SubPath[1].TrafficType)
}

func TestCacheRepository_Geocode(t *testing.T) {
	repo, client := getTestCache(t)
	ctx := context.Background()
	defer client.Del(ctx, cache.GeocodeKey("서울역"))

	candidates := []domain.GeocodeCandidate{
		{Name: "서울역", Coordinate: domain.Coordinate{Lat: 37.554648, Lon: 126.972559}},
	}
	require.NoError(t, repo.SetGeocode(ctx, "서울역", candidates, time.Minute))

	got, ok, err := repo.GetGeocode(ctx, " 서울역")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, candidates, got)
}

func TestCacheRepository_CorruptedEntryIsMiss(t *testing.T) {
	repo, client := getTestCache(t)
	ctx := context.Background()
	key := cache.GeocodeKey("broken")
	defer client.Del(ctx, key)

	require.NoError(t, client.Set(ctx, key, "{not json", time.Minute).Err())

	_, ok, err := repo.GetGeocode(ctx, "broken")
	require.NoError(t, err)
	assert.False(t, ok)

	exists, err := client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
