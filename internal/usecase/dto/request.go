package dto

import "github.com/route-planner/internal/domain"

// PlanRouteRequest - запрос на построение маршрута
type PlanRouteRequest struct {
	Origin      string            `json:"origin" validate:"required,max=200" example:"37.497942,127.027621"`
	Destination string            `json:"destination" validate:"required,max=200" example:"서울역"`
	ProfileID   string            `json:"profile_id,omitempty" validate:"omitempty,max=64"`
	Preferences *PreferencesInput `json:"preferences,omitempty"`
	Learn       bool              `json:"learn"`
}

// PreferencesInput - веса предпочтений, диапазоны совпадают со слайдерами интерфейса
type PreferencesInput struct {
	CrowdWeight    float64                 `json:"crowd_weight" validate:"min=0,max=5" example:"2"`
	MaxCrowd       int                     `json:"max_crowd" validate:"min=1,max=4" example:"4"`
	WalkLimitMin   int                     `json:"walk_limit_min" validate:"min=0,max=60" example:"15"`
	ModePenalty    map[domain.Mode]float64 `json:"mode_penalty,omitempty" validate:"omitempty,dive,keys,oneof=SUBWAY BUS WALK,endkeys,min=0,max=10"`
	ModePreference map[domain.Mode]float64 `json:"mode_preference,omitempty" validate:"omitempty,dive,keys,oneof=SUBWAY BUS WALK,endkeys,min=-10,max=10"`
}

// ToDomain переносит значения поверх профиля по умолчанию
func (p PreferencesInput) ToDomain() domain.PreferenceProfile {
	prefs := domain.DefaultPreferences()
	prefs.CrowdWeight = p.CrowdWeight
	prefs.MaxCrowd = p.MaxCrowd
	prefs.WalkLimitMin = p.WalkLimitMin
	for m, v := range p.ModePenalty {
		prefs.ModePenalty[m] = v
	}
	for m, v := range p.ModePreference {
		prefs.ModePreference[m] = v
	}
	return prefs
}

// GeocodeRequest - запрос на геокодирование
type GeocodeRequest struct {
	Query string `query:"query" validate:"required,max=200"`
}

// HistoryRequest - параметры списка истории
type HistoryRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}
