// Package planner turns raw transit search results into routes and picks
// the best one for a preference profile. Everything here is pure: no I/O,
// no shared state, safe for concurrent use.
package planner

import (
	"math"
	"strings"

	"github.com/route-planner/internal/domain"
)

// Display labels used when the provider gives no name.
const (
	SubwayLabel = "지하철"
	BusLabel    = "버스"
	WalkLabel   = "도보"
)

// NormalizeSubPath converts one provider sub-path into a Segment.
// It never fails: every missing field has a default.
func NormalizeSubPath(sp domain.RawSubPath) domain.Segment {
	mode := sp.TrafficType.Mode()

	seg := domain.Segment{
		Mode:      mode,
		Name:      segmentName(mode, sp.Lane),
		DistanceM: nonNegative(sp.Distance.Float64()),
		Crowd:     crowdLevel(sp.Crowd),
		Poly:      stationPoly(sp.PassStopList),
	}

	// Provider walk times are unreliable, always derive them from distance.
	if mode == domain.ModeWalk {
		seg.DurationMin = domain.WalkDurationMin(seg.DistanceM)
	} else {
		seg.DurationMin = nonNegative(sp.SectionTime.Float64())
	}

	if mode == domain.ModeSubway && sp.BestCar.Valid && sp.BestCar.Value > 0 {
		car := sp.BestCar.Value
		seg.BestCar = &car
	}

	return seg
}

func segmentName(mode domain.Mode, lanes []domain.RawLane) string {
	switch mode {
	case domain.ModeSubway:
		if len(lanes) > 0 {
			if name := firstNonEmpty(lanes[0].Name, lanes[0].LaneName, lanes[0].SubwayName); name != "" {
				return name
			}
		}
		return SubwayLabel
	case domain.ModeBus:
		if len(lanes) > 0 {
			if no := strings.TrimSpace(lanes[0].BusNo); no != "" {
				return no
			}
		}
		return BusLabel
	default:
		return WalkLabel
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func crowdLevel(c domain.OptionalInt) int {
	if !c.Valid {
		return domain.MinCrowd
	}
	switch {
	case c.Value < domain.MinCrowd:
		return domain.MinCrowd
	case c.Value > domain.MaxCrowd:
		return domain.MaxCrowd
	}
	return c.Value
}

// stationPoly skips stations without usable coordinates.
func stationPoly(list *domain.RawPassStopList) []domain.Coordinate {
	if list == nil || len(list.Stations) == 0 {
		return []domain.Coordinate{}
	}

	poly := make([]domain.Coordinate, 0, len(list.Stations))
	for _, st := range list.Stations {
		c := domain.Coordinate{Lat: st.Y.Float64(), Lon: st.X.Float64()}
		if (c.Lat == 0 && c.Lon == 0) || !c.IsValid() {
			continue
		}
		poly = append(poly, c)
	}
	return poly
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
