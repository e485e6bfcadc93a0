package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"github.com/route-planner/internal/pkg/errors"
	"github.com/route-planner/internal/planner"
	"github.com/route-planner/internal/usecase/dto"
)

// RouteUseCase - построение маршрута: поиск вариантов, выбор по предпочтениям,
// запасной пеший маршрут, карта и запись истории в режиме обучения.
type RouteUseCase struct {
	resolver      LocationResolver
	transitRepo   repository.TransitSearchRepository
	cacheRepo     repository.CacheRepository
	preferences   *PreferenceUseCase
	streamRepo    repository.StreamRepository
	renderer      repository.MapRenderer
	logger        *zap.Logger
	routeCacheTTL time.Duration
}

// NewRouteUseCase - создание нового RouteUseCase
func NewRouteUseCase(
	resolver LocationResolver,
	transitRepo repository.TransitSearchRepository,
	cacheRepo repository.CacheRepository,
	preferences *PreferenceUseCase,
	streamRepo repository.StreamRepository,
	renderer repository.MapRenderer,
	logger *zap.Logger,
	routeCacheTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		resolver:      resolver,
		transitRepo:   transitRepo,
		cacheRepo:     cacheRepo,
		preferences:   preferences,
		streamRepo:    streamRepo,
		renderer:      renderer,
		logger:        logger,
		routeCacheTTL: routeCacheTTL,
	}
}

// Plan строит маршрут между двумя точками
func (uc *RouteUseCase) Plan(ctx context.Context, req dto.PlanRouteRequest) (*dto.PlanRouteResponse, error) {
	start := time.Now()

	// Начало и конец разрешаются параллельно
	var origin, destination domain.Coordinate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := uc.resolver.Resolve(gctx, req.Origin)
		if err != nil {
			return err
		}
		origin = c
		return nil
	})
	g.Go(func() error {
		c, err := uc.resolver.Resolve(gctx, req.Destination)
		if err != nil {
			return err
		}
		destination = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profileID := req.ProfileID
	if profileID == "" {
		profileID = uc.preferences.defaultProfileID
	}
	prefs := uc.preferences.Effective(ctx, profileID, req.Preferences)

	var warnings []string
	paths, err := uc.searchPaths(ctx, origin, destination)
	if err != nil {
		warnings = append(warnings, errors.WarnProviderUnavailable)
	}

	candidates := planner.AssembleRoutes(paths)
	routes := planner.Routes(candidates)
	if err == nil && len(candidates) == 0 {
		warnings = append(warnings, errors.WarnNoCandidates)
	}

	selection := planner.Select(routes, prefs)

	var chosen domain.Route
	var bestIndex *int
	fallback := !selection.Found()
	if fallback {
		if len(routes) > 0 {
			warnings = append(warnings, errors.WarnNoFeasibleRoute)
		}
		chosen = planner.FallbackRoute(origin, destination)
	} else {
		chosen = *selection.Route
		idx := candidates[selection.BestIndex].ProviderIndex
		bestIndex = &idx
	}

	ranked := planner.Rank(routes, prefs)
	candidateDTOs := make([]dto.CandidateDTO, 0, len(ranked))
	for rank, r := range ranked {
		candidateDTOs = append(candidateDTOs, dto.NewCandidateDTO(
			candidates[r.Index].ProviderIndex,
			rank+1,
			!fallback && r.Index == selection.BestIndex,
			routes[r.Index],
			r.Evaluation,
		))
	}

	if warnings == nil {
		warnings = []string{}
	}

	resp := &dto.PlanRouteResponse{
		Origin:      dto.LocationDTO{Query: req.Origin, Coordinate: origin},
		Destination: dto.LocationDTO{Query: req.Destination, Coordinate: destination},
		ProfileID:   profileID,
		Preferences: prefs,
		Route:       dto.NewRouteDTO(chosen),
		TotalMin:    chosen.TotalDurationMin(),
		BestIndex:   bestIndex,
		Fallback:    fallback,
		Warnings:    warnings,
		Candidates:  candidateDTOs,
		Summary:     dto.SummaryLines(chosen),
	}

	mapData, err := uc.renderer.Render(chosen, origin, destination)
	if err != nil {
		uc.logger.Warn("Failed to render route map", zap.Error(err))
	} else {
		resp.Map = mapData
	}

	if req.Learn {
		resp.HistoryID = uc.publishHistory(ctx, profileID, req, chosen)
	}

	uc.logger.Info("Route planned",
		zap.String("profile_id", profileID),
		zap.Int("candidates", len(routes)),
		zap.Bool("fallback", fallback),
		zap.Strings("warnings", warnings),
		zap.Float64("total_min", resp.TotalMin),
		zap.Duration("duration", time.Since(start)))

	return resp, nil
}

// searchPaths - ответ провайдера через кеш. Ошибка означает недоступность
// провайдера; ошибки кеша только логируются.
func (uc *RouteUseCase) searchPaths(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RawPath, error) {
	if cached, ok, err := uc.cacheRepo.GetTransitPaths(ctx, origin, destination); err != nil {
		uc.logger.Warn("Transit cache read failed", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	paths, err := uc.transitRepo.SearchPaths(ctx, origin, destination)
	if err != nil {
		uc.logger.Warn("Transit provider unavailable, using fallback route", zap.Error(err))
		return nil, err
	}

	if len(paths) > 0 {
		if err := uc.cacheRepo.SetTransitPaths(ctx, origin, destination, paths, uc.routeCacheTTL); err != nil {
			uc.logger.Warn("Transit cache write failed", zap.Error(err))
		}
	}
	return paths, nil
}

// publishHistory отправляет событие в стрим истории; ошибка не влияет на ответ
func (uc *RouteUseCase) publishHistory(ctx context.Context, profileID string, req dto.PlanRouteRequest, route domain.Route) string {
	event := &domain.RouteHistoryEvent{
		ID:          uuid.NewString(),
		ProfileID:   profileID,
		Timestamp:   time.Now().UTC(),
		Origin:      req.Origin,
		Destination: req.Destination,
		TotalMin:    route.TotalDurationMin(),
		Modes:       route.Modes(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamRouteHistory, event); err != nil {
		uc.logger.Warn("Failed to publish route history",
			zap.String("profile_id", profileID),
			zap.Error(err))
		return ""
	}
	return event.ID
}
