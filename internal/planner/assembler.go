package planner

import "github.com/route-planner/internal/domain"

// Candidate is an assembled route together with the index of the provider
// path it was built from.
type Candidate struct {
	ProviderIndex int
	Route         domain.Route
}

// AssembleRoute builds a Route from a provider path, keeping sub-path order.
// The second result is false when the path yields no segments.
func AssembleRoute(p domain.RawPath) (domain.Route, bool) {
	if len(p.SubPath) == 0 {
		return domain.Route{}, false
	}

	segments := make([]domain.Segment, 0, len(p.SubPath))
	for _, sp := range p.SubPath {
		segments = append(segments, NormalizeSubPath(sp))
	}
	return domain.Route{Segments: segments}, true
}

// AssembleRoutes builds one candidate per non-empty provider path.
func AssembleRoutes(paths []domain.RawPath) []Candidate {
	candidates := make([]Candidate, 0, len(paths))
	for i, p := range paths {
		route, ok := AssembleRoute(p)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{ProviderIndex: i, Route: route})
	}
	return candidates
}

// Routes extracts the routes of candidates, preserving order.
func Routes(candidates []Candidate) []domain.Route {
	routes := make([]domain.Route, len(candidates))
	for i, c := range candidates {
		routes[i] = c.Route
	}
	return routes
}
