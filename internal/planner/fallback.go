package planner

import (
	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/pkg/utils"
)

// FallbackLabel names the synthetic straight-line walk.
const FallbackLabel = "직선도보"

// FallbackRoute builds the single-segment straight-line walking route used
// when no candidate survives selection.
func FallbackRoute(origin, destination domain.Coordinate) domain.Route {
	distance := utils.Haversine(origin, destination)
	return domain.Route{
		Segments: []domain.Segment{{
			Mode:        domain.ModeWalk,
			Name:        FallbackLabel,
			DistanceM:   distance,
			DurationMin: distance / (domain.WalkSpeedMPS * 60),
			Crowd:       domain.MinCrowd,
			Poly:        []domain.Coordinate{origin, destination},
		}},
	}
}
