package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/planner"
	"github.com/route-planner/internal/render"
)

// LocationDTO - исходная строка и найденная координата
type LocationDTO struct {
	Query      string            `json:"query"`
	Coordinate domain.Coordinate `json:"coordinate"`
}

// SegmentDTO - участок маршрута с закодированной геометрией
type SegmentDTO struct {
	Mode        domain.Mode `json:"mode"`
	Name        string      `json:"name"`
	DistanceM   float64     `json:"distance_m"`
	DurationMin float64     `json:"duration_min"`
	Crowd       int         `json:"crowd"`
	BestCar     *int        `json:"best_car,omitempty"`
	Polyline    string      `json:"polyline"`
}

// RouteDTO - выбранный маршрут
type RouteDTO struct {
	Segments       []SegmentDTO  `json:"segments"`
	TotalMin       float64       `json:"total_min"`
	TotalDistanceM float64       `json:"total_distance_m"`
	WalkMin        float64       `json:"walk_min"`
	Transfers      int           `json:"transfers"`
	Modes          []domain.Mode `json:"modes"`
}

// CandidateDTO - оценка одного варианта провайдера
type CandidateDTO struct {
	ProviderIndex int           `json:"provider_index"`
	Rank          int           `json:"rank"`
	Chosen        bool          `json:"chosen"`
	Feasible      bool          `json:"feasible"`
	Cost          *float64      `json:"cost"`
	Reason        string        `json:"reason,omitempty"`
	DurationMin   float64       `json:"duration_min"`
	WalkMin       float64       `json:"walk_min"`
	MaxCrowd      int           `json:"max_crowd"`
	Transfers     int           `json:"transfers"`
	Modes         []domain.Mode `json:"modes"`
}

// PlanRouteResponse - результат построения маршрута.
// BestIndex - индекс варианта в ответе провайдера, null для запасного маршрута.
type PlanRouteResponse struct {
	Origin      LocationDTO              `json:"origin"`
	Destination LocationDTO              `json:"destination"`
	ProfileID   string                   `json:"profile_id"`
	Preferences domain.PreferenceProfile `json:"preferences"`
	Route       RouteDTO                 `json:"route"`
	TotalMin    float64                  `json:"total_min"`
	BestIndex   *int                     `json:"best_index"`
	Fallback    bool                     `json:"fallback"`
	Warnings    []string                 `json:"warnings"`
	Candidates  []CandidateDTO           `json:"candidates"`
	Summary     []string                 `json:"summary"`
	Map         json.RawMessage          `json:"map,omitempty" swaggertype:"object"`
	HistoryID   string                   `json:"history_id,omitempty"`
}

// PreferencesResponse - сохранённый или профиль по умолчанию
type PreferencesResponse struct {
	ProfileID   string                   `json:"profile_id"`
	Preferences domain.PreferenceProfile `json:"preferences"`
	Runs        int                      `json:"runs"`
	Saved       bool                     `json:"saved"`
	UpdatedAt   *time.Time               `json:"updated_at,omitempty"`
}

// HistoryResponse - история маршрутов профиля, новые первыми
type HistoryResponse struct {
	ProfileID string                 `json:"profile_id"`
	Records   []domain.HistoryRecord `json:"records"`
	Total     int                    `json:"total"`
}

// GeocodeResponse - кандидаты геокодирования по релевантности
type GeocodeResponse struct {
	Query      string                    `json:"query"`
	Candidates []domain.GeocodeCandidate `json:"candidates"`
}

// HealthResponse - состояние зависимостей
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

func NewRouteDTO(r domain.Route) RouteDTO {
	segments := make([]SegmentDTO, 0, len(r.Segments))
	for _, s := range r.Segments {
		segments = append(segments, SegmentDTO{
			Mode:        s.Mode,
			Name:        s.Name,
			DistanceM:   s.DistanceM,
			DurationMin: s.DurationMin,
			Crowd:       s.Crowd,
			BestCar:     s.BestCar,
			Polyline:    render.EncodePolyline(s.Poly),
		})
	}
	return RouteDTO{
		Segments:       segments,
		TotalMin:       r.TotalDurationMin(),
		TotalDistanceM: r.TotalDistanceM(),
		WalkMin:        r.WalkDurationMin(),
		Transfers:      r.Transfers(),
		Modes:          r.Modes(),
	}
}

// NewCandidateDTO - стоимость недопустимого варианта отдаётся как null
func NewCandidateDTO(providerIndex, rank int, chosen bool, r domain.Route, ev planner.Evaluation) CandidateDTO {
	c := CandidateDTO{
		ProviderIndex: providerIndex,
		Rank:          rank,
		Chosen:        chosen,
		Feasible:      ev.Feasible,
		Reason:        string(ev.Reason),
		DurationMin:   ev.DurationMin,
		WalkMin:       ev.WalkMin,
		MaxCrowd:      ev.MaxCrowd,
		Transfers:     r.Transfers(),
		Modes:         r.Modes(),
	}
	if ev.Feasible {
		cost := ev.Cost
		c.Cost = &cost
	}
	return c
}

// SummaryLines - по строке на участок: "1. SUBWAY | 2호선 | 12.0분 | 추천칸 3"
func SummaryLines(r domain.Route) []string {
	lines := make([]string, 0, len(r.Segments))
	for i, s := range r.Segments {
		line := fmt.Sprintf("%d. %s | %s | %.1f분", i+1, s.Mode, s.Name, s.DurationMin)
		if s.BestCar != nil {
			line += fmt.Sprintf(" | 추천칸 %d", *s.BestCar)
		}
		lines = append(lines, line)
	}
	return lines
}
