package planner

import (
	"math"

	"github.com/route-planner/internal/domain"
)

// ModeRateScale converts the per-mode penalty plus preference into an
// exponent of the duration multiplier. With a scale of 0.1 a penalty of 10
// makes a minute cost e ≈ 2.7 minutes and a preference of -10 makes it ≈ 0.37.
const ModeRateScale = 0.1

// InfeasibleReason explains why a route was rejected.
type InfeasibleReason string

const (
	ReasonNone       InfeasibleReason = ""
	ReasonEmptyRoute InfeasibleReason = "EMPTY_ROUTE"
	ReasonCrowdLimit InfeasibleReason = "CROWD_LIMIT"
	ReasonWalkLimit  InfeasibleReason = "WALK_LIMIT"
	// ReasonInvalidCost - стоимость не является конечным числом
	ReasonInvalidCost InfeasibleReason = "INVALID_COST"
)

// Evaluation is the scoring breakdown of one route.
// Cost is +Inf when the route is infeasible.
type Evaluation struct {
	Cost        float64
	Feasible    bool
	Reason      InfeasibleReason
	DurationMin float64
	WalkMin     float64
	MaxCrowd    int
}

// Score returns the cost of route under prefs, +Inf when infeasible.
func Score(route domain.Route, prefs domain.PreferenceProfile) float64 {
	return Evaluate(route, prefs).Cost
}

// Evaluate checks the crowd and walk ceilings and accumulates the cost:
//
//	Σ duration * exp(ModeRateScale * (penalty[mode] + preference[mode])) + crowdWeight * (crowd - 1)
func Evaluate(route domain.Route, prefs domain.PreferenceProfile) Evaluation {
	ev := Evaluation{
		DurationMin: route.TotalDurationMin(),
		WalkMin:     route.WalkDurationMin(),
		MaxCrowd:    route.MaxCrowd(),
	}

	switch {
	case len(route.Segments) == 0:
		return infeasible(ev, ReasonEmptyRoute)
	case ev.MaxCrowd > prefs.MaxCrowd:
		return infeasible(ev, ReasonCrowdLimit)
	case ev.WalkMin > float64(prefs.WalkLimitMin):
		return infeasible(ev, ReasonWalkLimit)
	}

	var cost float64
	for _, s := range route.Segments {
		cost += segmentCost(s, prefs)
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return infeasible(ev, ReasonInvalidCost)
	}

	ev.Cost = cost
	ev.Feasible = true
	return ev
}

func segmentCost(s domain.Segment, prefs domain.PreferenceProfile) float64 {
	rate := prefs.Penalty(s.Mode) + prefs.Preference(s.Mode)
	crowd := s.Crowd
	if crowd < domain.MinCrowd {
		crowd = domain.MinCrowd
	}
	return s.DurationMin*math.Exp(ModeRateScale*rate) + prefs.CrowdWeight*float64(crowd-1)
}

func infeasible(ev Evaluation, reason InfeasibleReason) Evaluation {
	ev.Cost = math.Inf(1)
	ev.Feasible = false
	ev.Reason = reason
	return ev
}
