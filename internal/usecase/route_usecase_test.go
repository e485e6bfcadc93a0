package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/pkg/errors"
	"github.com/route-planner/internal/planner"
	"github.com/route-planner/internal/usecase"
	"github.com/route-planner/internal/usecase/dto"
)

var (
	gangnam  = domain.Coordinate{Lat: 37.497942, Lon: 127.027621}
	seoulSta = domain.Coordinate{Lat: 37.554648, Lon: 126.972559}
)

type routeMocks struct {
	resolver *MockLocationResolver
	transit  *MockTransitSearchRepository
	cache    *MockCacheRepository
	prefs    *MockPreferenceRepository
	stream   *MockStreamRepository
	renderer *MockMapRenderer
}

func newRouteUseCase() (*usecase.RouteUseCase, *routeMocks) {
	m := &routeMocks{
		resolver: &MockLocationResolver{},
		transit:  &MockTransitSearchRepository{},
		cache:    &MockCacheRepository{},
		prefs:    &MockPreferenceRepository{},
		stream:   &MockStreamRepository{},
		renderer: &MockMapRenderer{},
	}
	logger := zap.NewNop()
	prefUC := usecase.NewPreferenceUseCase(m.prefs, logger, "default")
	uc := usecase.NewRouteUseCase(m.resolver, m.transit, m.cache, prefUC, m.stream, m.renderer, logger, 10*time.Minute)

	m.resolver.On("Resolve", mock.Anything, "강남역").Return(gangnam, nil)
	m.resolver.On("Resolve", mock.Anything, "서울역").Return(seoulSta, nil)
	m.renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).Return([]byte(`{"type":"FeatureCollection"}`), nil)
	return uc, m
}

// providerPaths: пустой путь, метро с давкой 4 (20 мин), автобус (3 мин пешком + 25 мин)
func providerPaths() []domain.RawPath {
	return []domain.RawPath{
		{PathType: 1},
		{PathType: 1, SubPath: []domain.RawSubPath{
			{TrafficType: domain.TrafficTypeSubway, SectionTime: 20, Distance: 9000,
				Lane: []domain.RawLane{{Name: "2호선"}}, Crowd: domain.OptionalInt{Value: 4, Valid: true},
				BestCar: domain.OptionalInt{Value: 7, Valid: true}},
		}},
		{PathType: 2, SubPath: []domain.RawSubPath{
			{TrafficType: domain.TrafficTypeWalk, Distance: 234},
			{TrafficType: domain.TrafficTypeBus, SectionTime: 25, Distance: 8000,
				Lane: []domain.RawLane{{BusNo: "402"}}},
		}},
	}
}

func planRequest() dto.PlanRouteRequest {
	return dto.PlanRouteRequest{Origin: "강남역", Destination: "서울역"}
}

func TestRouteUseCase_Plan_SelectsCheapest(t *testing.T) {
	uc, m := newRouteUseCase()
	paths := providerPaths()

	m.prefs.On("Get", mock.Anything, "default").Return(nil, nil)
	m.cache.On("GetTransitPaths", mock.Anything, gangnam, seoulSta).Return(nil, false, nil)
	m.transit.On("SearchPaths", mock.Anything, gangnam, seoulSta).Return(paths, nil)
	m.cache.On("SetTransitPaths", mock.Anything, gangnam, seoulSta, paths, 10*time.Minute).Return(nil)

	resp, err := uc.Plan(context.Background(), planRequest())

	require.NoError(t, err)
	assert.False(t, resp.Fallback)
	assert.Empty(t, resp.Warnings)
	require.NotNil(t, resp.BestIndex)
	// метро: 20 + 2*(4-1) = 26 < автобус: 3 + 25 = 28
	assert.Equal(t, 1, *resp.BestIndex)
	assert.Equal(t, 20.0, resp.TotalMin)
	assert.Equal(t, "default", resp.ProfileID)
	assert.Equal(t, []string{"1. SUBWAY | 2호선 | 20.0분 | 추천칸 7"}, resp.Summary)
	assert.JSONEq(t, `{"type":"FeatureCollection"}`, string(resp.Map))

	require.Len(t, resp.Candidates, 2)
	assert.Equal(t, 1, resp.Candidates[0].ProviderIndex)
	assert.True(t, resp.Candidates[0].Chosen)
	assert.Equal(t, 1, resp.Candidates[0].Rank)
	assert.InDelta(t, 26.0, *resp.Candidates[0].Cost, 1e-9)
	assert.Equal(t, 2, resp.Candidates[1].ProviderIndex)
	assert.InDelta(t, 28.0, *resp.Candidates[1].Cost, 1e-6)

	m.cache.AssertExpectations(t)
	m.stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteUseCase_Plan_PreferenceOverride(t *testing.T) {
	uc, m := newRouteUseCase()
	paths := providerPaths()

	m.cache.On("GetTransitPaths", mock.Anything, gangnam, seoulSta).Return(paths, true, nil)

	req := planRequest()
	req.Preferences = &dto.PreferencesInput{CrowdWeight: 2, MaxCrowd: 3, WalkLimitMin: 15}

	resp, err := uc.Plan(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.BestIndex)
	assert.Equal(t, 2, *resp.BestIndex)
	assert.Equal(t, []domain.Mode{domain.ModeWalk, domain.ModeBus}, resp.Route.Modes)

	require.Len(t, resp.Candidates, 2)
	assert.Equal(t, 2, resp.Candidates[0].ProviderIndex)
	assert.False(t, resp.Candidates[1].Feasible)
	assert.Nil(t, resp.Candidates[1].Cost)
	assert.Equal(t, string(planner.ReasonCrowdLimit), resp.Candidates[1].Reason)

	m.transit.AssertNotCalled(t, "SearchPaths", mock.Anything, mock.Anything, mock.Anything)
	m.prefs.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestRouteUseCase_Plan_SavedProfile(t *testing.T) {
	uc, m := newRouteUseCase()

	saved := domain.DefaultPreferences()
	saved.ModePenalty[domain.ModeSubway] = 10
	m.prefs.On("Get", mock.Anything, "alice").Return(&domain.SavedPreferences{ProfileID: "alice", Preferences: saved}, nil)
	m.cache.On("GetTransitPaths", mock.Anything, gangnam, seoulSta).Return(providerPaths(), true, nil)

	req := planRequest()
	req.ProfileID = "alice"
	resp, err := uc.Plan(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.BestIndex)
	// 20*e + 6 ≈ 60.4 > 28
	assert.Equal(t, 2, *resp.BestIndex)
	assert.Equal(t, 10.0, resp.Preferences.Penalty(domain.ModeSubway))
}

func TestRouteUseCase_Plan_ProviderUnavailable(t *testing.T) {
	uc, m := newRouteUseCase()

	m.prefs.On("Get", mock.Anything, "default").Return(nil, nil)
	m.cache.On("GetTransitPaths", mock.Anything, gangnam, seoulSta).Return(nil, false, nil)
	m.transit.On("SearchPaths", mock.Anything, gangnam, seoulSta).Return(nil, stderrors.New("timeout"))

	resp, err := uc.Plan(context.Background(), planRequest())

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Nil(t, resp.BestIndex)
	assert.Equal(t, []string{errors.WarnProviderUnavailable}, resp.Warnings)
	assert.Empty(t, resp.Candidates)
	require.Len(t, resp.Route.Segments, 1)
	assert.Equal(t, domain.ModeWalk, resp.Route.Segments[0].Mode)
	assert.Equal(t, planner.FallbackLabel, resp.Route.Segments[0].Name)
	assert.NotEmpty(t, resp.Route.Segments[0].Polyline)
	m.cache.AssertNotCalled(t, "SetTransitPaths", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteUseCase_Plan_NoCandidates(t *testing.T) {
	uc, m := newRouteUseCase()

	m.prefs.On("Get", mock.Anything, "default").Return(nil, nil)
	m.cache.On("GetTransitPaths", mock.Anything, gangnam, seoulSta).Return(nil, false, nil)
	m.transit.On("SearchPaths", mock.Anything, gangnam, seoulSta).Return([]domain.RawPath{}, nil)

	resp, err := uc.Plan(context.Background(), planRequest())

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, []string{errors.WarnNoCandidates}, resp.Warnings)
}

func TestRouteUseCase_Plan_AllInfeasible(t *testing.T) {
	uc, m := newRouteUseCase()

	m.cache.On("GetTransitPaths", mock.Anything, gangnam, seoulSta).Return(providerPaths(), true, nil)

	req := planRequest()
	// давка метро 4 > 3, пешком 3 мин > 2
	req.Preferences = &dto.PreferencesInput{CrowdWeight: 2, MaxCrowd: 3, WalkLimitMin: 2}

	resp, err := uc.Plan(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Nil(t, resp.BestIndex)
	assert.Equal(t, []string{errors.WarnNoFeasibleRoute}, resp.Warnings)
	require.Len(t, resp.Candidates, 2)
	for _, c := range resp.Candidates {
		assert.False(t, c.Feasible)
		assert.False(t, c.Chosen)
	}
}

func TestRouteUseCase_Plan_LearnPublishesHistory(t *testing.T) {
	uc, m := newRouteUseCase()

	m.prefs.On("Get", mock.Anything, "default").Return(nil, nil)
	m.cache.On("GetTransitPaths", mock.Anything, gangnam, seoulSta).Return(providerPaths(), true, nil)
	m.stream.On("PublishToStream", mock.Anything, domain.StreamRouteHistory, mock.MatchedBy(func(e *domain.RouteHistoryEvent) bool {
		return e.ID != "" &&
			e.ProfileID == "default" &&
			e.Origin == "강남역" &&
			e.Destination == "서울역" &&
			e.TotalMin == 20 &&
			len(e.Modes) == 1 && e.Modes[0] == domain.ModeSubway
	})).Return(nil)

	req := planRequest()
	req.Learn = true
	resp, err := uc.Plan(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.HistoryID)
	m.stream.AssertExpectations(t)
}

func TestRouteUseCase_Plan_LearnPublishFailureIgnored(t *testing.T) {
	uc, m := newRouteUseCase()

	m.prefs.On("Get", mock.Anything, "default").Return(nil, nil)
	m.cache.On("GetTransitPaths", mock.Anything, gangnam, seoulSta).Return(providerPaths(), true, nil)
	m.stream.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(stderrors.New("redis down"))

	req := planRequest()
	req.Learn = true
	resp, err := uc.Plan(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, resp.HistoryID)
	assert.False(t, resp.Fallback)
}

func TestRouteUseCase_Plan_ResolveError(t *testing.T) {
	m := &routeMocks{
		resolver: &MockLocationResolver{},
		transit:  &MockTransitSearchRepository{},
		cache:    &MockCacheRepository{},
		prefs:    &MockPreferenceRepository{},
		stream:   &MockStreamRepository{},
		renderer: &MockMapRenderer{},
	}
	logger := zap.NewNop()
	uc := usecase.NewRouteUseCase(m.resolver, m.transit, m.cache,
		usecase.NewPreferenceUseCase(m.prefs, logger, ""), m.stream, m.renderer, logger, time.Minute)

	m.resolver.On("Resolve", mock.Anything, "강남역").Return(gangnam, nil)
	m.resolver.On("Resolve", mock.Anything, "nowhere").Return(domain.Coordinate{}, errors.ErrLocationNotFound)

	_, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Origin: "강남역", Destination: "nowhere"})

	assert.True(t, stderrors.Is(err, errors.ErrLocationNotFound))
	m.transit.AssertNotCalled(t, "SearchPaths", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteUseCase_Plan_RenderFailureKeepsRoute(t *testing.T) {
	m := &routeMocks{
		resolver: &MockLocationResolver{},
		transit:  &MockTransitSearchRepository{},
		cache:    &MockCacheRepository{},
		prefs:    &MockPreferenceRepository{},
		stream:   &MockStreamRepository{},
		renderer: &MockMapRenderer{},
	}
	logger := zap.NewNop()
	uc := usecase.NewRouteUseCase(m.resolver, m.transit, m.cache,
		usecase.NewPreferenceUseCase(m.prefs, logger, ""), m.stream, m.renderer, logger, time.Minute)

	m.resolver.On("Resolve", mock.Anything, "강남역").Return(gangnam, nil)
	m.resolver.On("Resolve", mock.Anything, "서울역").Return(seoulSta, nil)
	m.prefs.On("Get", mock.Anything, "default").Return(nil, stderrors.New("db down"))
	m.cache.On("GetTransitPaths", mock.Anything, gangnam, seoulSta).Return(providerPaths(), true, nil)
	m.renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).Return(nil, stderrors.New("bad geometry"))

	resp, err := uc.Plan(context.Background(), planRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.Map)
	assert.Equal(t, domain.DefaultPreferences(), resp.Preferences)
	assert.False(t, resp.Fallback)
}
