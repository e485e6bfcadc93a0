package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/route-planner/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetTransitPaths(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RawPath, bool, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.RawPath), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) SetTransitPaths(ctx context.Context, origin, destination domain.Coordinate, paths []domain.RawPath, ttl time.Duration) error {
	args := m.Called(ctx, origin, destination, paths, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetGeocode(ctx context.Context, query string) ([]domain.GeocodeCandidate, bool, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.GeocodeCandidate), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) SetGeocode(ctx context.Context, query string, candidates []domain.GeocodeCandidate, ttl time.Duration) error {
	args := m.Called(ctx, query, candidates, ttl)
	return args.Error(0)
}

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Geocode(ctx context.Context, query string) ([]domain.GeocodeCandidate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeocodeCandidate), args.Error(1)
}

// MockTransitSearchRepository is a mock of TransitSearchRepository
type MockTransitSearchRepository struct {
	mock.Mock
}

func (m *MockTransitSearchRepository) SearchPaths(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RawPath, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawPath), args.Error(1)
}

// MockPreferenceRepository is a mock of PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Get(ctx context.Context, profileID string) (*domain.SavedPreferences, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedPreferences), args.Error(1)
}

func (m *MockPreferenceRepository) Save(ctx context.Context, profileID string, prefs domain.PreferenceProfile) (*domain.SavedPreferences, error) {
	args := m.Called(ctx, profileID, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedPreferences), args.Error(1)
}

func (m *MockPreferenceRepository) IncrementRuns(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

// MockHistoryRepository is a mock of HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Insert(ctx context.Context, record domain.HistoryRecord) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

func (m *MockHistoryRepository) ListByProfile(ctx context.Context, profileID string, limit int) ([]domain.HistoryRecord, error) {
	args := m.Called(ctx, profileID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryRecord), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ConsumePending(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockMapRenderer is a mock of MapRenderer
type MockMapRenderer struct {
	mock.Mock
}

func (m *MockMapRenderer) Render(route domain.Route, origin, destination domain.Coordinate) ([]byte, error) {
	args := m.Called(route, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockLocationResolver is a mock of LocationResolver
type MockLocationResolver struct {
	mock.Mock
}

func (m *MockLocationResolver) Resolve(ctx context.Context, input string) (domain.Coordinate, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Coordinate), args.Error(1)
}
