package planner

import (
	"sort"

	"github.com/route-planner/internal/domain"
)

// Select picks the feasible route with the lowest cost. Ties go to the lowest
// index. When no route is feasible the result has BestIndex -1 and a nil Route.
// Inputs are not modified.
func Select(routes []domain.Route, prefs domain.PreferenceProfile) domain.SelectionResult {
	best := -1
	var bestCost float64
	for i, r := range routes {
		ev := Evaluate(r, prefs)
		if !ev.Feasible {
			continue
		}
		if best == -1 || ev.Cost < bestCost {
			best = i
			bestCost = ev.Cost
		}
	}

	if best == -1 {
		return domain.SelectionResult{BestIndex: -1}
	}

	chosen := cloneRoute(routes[best])
	return domain.SelectionResult{BestIndex: best, Route: &chosen}
}

// Ranked is a route index with its evaluation.
type Ranked struct {
	Index      int
	Evaluation Evaluation
}

// Rank evaluates every route and orders them feasible first, then by cost,
// then by index. The first entry, when feasible, is the one Select returns.
func Rank(routes []domain.Route, prefs domain.PreferenceProfile) []Ranked {
	ranked := make([]Ranked, len(routes))
	for i, r := range routes {
		ranked[i] = Ranked{Index: i, Evaluation: Evaluate(r, prefs)}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		ea, eb := ranked[a].Evaluation, ranked[b].Evaluation
		if ea.Feasible != eb.Feasible {
			return ea.Feasible
		}
		if ea.Feasible && ea.Cost != eb.Cost {
			return ea.Cost < eb.Cost
		}
		return ranked[a].Index < ranked[b].Index
	})
	return ranked
}

func cloneRoute(r domain.Route) domain.Route {
	segments := make([]domain.Segment, len(r.Segments))
	for i, s := range r.Segments {
		if s.BestCar != nil {
			car := *s.BestCar
			s.BestCar = &car
		}
		poly := make([]domain.Coordinate, len(s.Poly))
		copy(poly, s.Poly)
		s.Poly = poly
		segments[i] = s
	}
	return domain.Route{Segments: segments}
}
