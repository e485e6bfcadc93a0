package domain

import "time"

const (
	DefaultProfileID = "default"

	DefaultCrowdWeight  = 2.0
	DefaultMaxCrowd     = 4
	DefaultWalkLimitMin = 15
)

// PreferenceProfile - пользовательские веса для одного поиска.
// После создания не изменяется: методы возвращают копии.
type PreferenceProfile struct {
	CrowdWeight    float64          `json:"crowd_weight"`
	MaxCrowd       int              `json:"max_crowd"`
	WalkLimitMin   int              `json:"walk_limit_min"`
	ModePenalty    map[Mode]float64 `json:"mode_penalty"`
	ModePreference map[Mode]float64 `json:"mode_preference"`
}

// DefaultPreferences returns the profile used when nothing has been saved.
func DefaultPreferences() PreferenceProfile {
	return PreferenceProfile{
		CrowdWeight:    DefaultCrowdWeight,
		MaxCrowd:       DefaultMaxCrowd,
		WalkLimitMin:   DefaultWalkLimitMin,
		ModePenalty:    map[Mode]float64{ModeSubway: 0, ModeBus: 0, ModeWalk: 0},
		ModePreference: map[Mode]float64{ModeSubway: 0, ModeBus: 0, ModeWalk: 0},
	}
}

// Penalty returns the configured penalty for mode, 0 when unmapped.
func (p PreferenceProfile) Penalty(m Mode) float64 {
	return p.ModePenalty[m]
}

// Preference returns the configured preference for mode, 0 when unmapped.
func (p PreferenceProfile) Preference(m Mode) float64 {
	return p.ModePreference[m]
}

// Normalize возвращает копию профиля с приведёнными к допустимым
// диапазонам значениями: max_crowd в 1..4, отрицательные веса и лимиты в 0.
func (p PreferenceProfile) Normalize() PreferenceProfile {
	out := PreferenceProfile{
		CrowdWeight:    p.CrowdWeight,
		MaxCrowd:       p.MaxCrowd,
		WalkLimitMin:   p.WalkLimitMin,
		ModePenalty:    make(map[Mode]float64, len(p.ModePenalty)),
		ModePreference: make(map[Mode]float64, len(p.ModePreference)),
	}
	if out.CrowdWeight < 0 {
		out.CrowdWeight = 0
	}
	if out.MaxCrowd < MinCrowd {
		out.MaxCrowd = MinCrowd
	}
	if out.MaxCrowd > MaxCrowd {
		out.MaxCrowd = MaxCrowd
	}
	if out.WalkLimitMin < 0 {
		out.WalkLimitMin = 0
	}
	for m, v := range p.ModePenalty {
		if v < 0 {
			v = 0
		}
		out.ModePenalty[m] = v
	}
	for m, v := range p.ModePreference {
		out.ModePreference[m] = v
	}
	return out
}

// SavedPreferences - сохранённый профиль пользователя
type SavedPreferences struct {
	ProfileID   string            `json:"profile_id"`
	Preferences PreferenceProfile `json:"preferences"`
	Runs        int               `json:"runs"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
