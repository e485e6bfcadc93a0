package planner_test

import "github.com/route-planner/internal/domain"

func seg(mode domain.Mode, durationMin float64, crowd int) domain.Segment {
	return domain.Segment{
		Mode:        mode,
		Name:        string(mode),
		DistanceM:   durationMin * 100,
		DurationMin: durationMin,
		Crowd:       crowd,
		Poly:        []domain.Coordinate{},
	}
}

func route(segments ...domain.Segment) domain.Route {
	return domain.Route{Segments: segments}
}

func prefs() domain.PreferenceProfile {
	return domain.DefaultPreferences()
}
