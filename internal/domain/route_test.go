package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRoute() Route {
	return Route{Segments: []Segment{
		{Mode: ModeWalk, DistanceM: 300, DurationMin: 4, Crowd: 1},
		{Mode: ModeSubway, DistanceM: 8000, DurationMin: 20, Crowd: 3},
		{Mode: ModeWalk, DistanceM: 100, DurationMin: 1.5, Crowd: 1},
		{Mode: ModeBus, DistanceM: 2000, DurationMin: 8, Crowd: 2},
	}}
}

func TestRoute_Aggregates(t *testing.T) {
	r := sampleRoute()

	assert.Equal(t, 33.5, r.TotalDurationMin())
	assert.Equal(t, 10400.0, r.TotalDistanceM())
	assert.Equal(t, 5.5, r.WalkDurationMin())
	assert.Equal(t, 3, r.MaxCrowd())
	assert.Equal(t, []Mode{ModeWalk, ModeSubway, ModeBus}, r.Modes())
	assert.Equal(t, 1, r.Transfers())
}

func TestRoute_Empty(t *testing.T) {
	var r Route

	assert.Zero(t, r.TotalDurationMin())
	assert.Zero(t, r.MaxCrowd())
	assert.Empty(t, r.Modes())
	assert.Zero(t, r.Transfers())
}

func TestWalkDurationMin(t *testing.T) {
	assert.InDelta(t, 1.0, WalkDurationMin(78), 1e-9)
	assert.Zero(t, WalkDurationMin(0))
	assert.Zero(t, WalkDurationMin(-5))
}

func TestMode_IsValid(t *testing.T) {
	for _, m := range AllModes() {
		assert.True(t, m.IsValid(), m)
	}
	assert.False(t, Mode("TRAM").IsValid())
	assert.False(t, Mode("").IsValid())
}

func TestSelectionResult_Found(t *testing.T) {
	assert.False(t, SelectionResult{BestIndex: -1}.Found())
	assert.True(t, SelectionResult{BestIndex: 0, Route: &Route{}}.Found())
}
