package domain

import "time"

// Coordinate - точка в WGS84 (градусы)
type Coordinate struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// IsValid проверяет, что координата лежит в допустимом диапазоне
func (c Coordinate) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// GeocodeCandidate - результат геокодирования, упорядочен по релевантности
type GeocodeCandidate struct {
	Name       string     `json:"name"`
	Address    string     `json:"address,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
}

// HistoryRecord - запись об использованном маршруте (режим обучения)
type HistoryRecord struct {
	ID          string    `json:"id" db:"id"`
	ProfileID   string    `json:"profile_id" db:"profile_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Origin      string    `json:"origin" db:"origin"`
	Destination string    `json:"destination" db:"destination"`
	TotalMin    float64   `json:"total_min" db:"total_min"`
	Modes       []Mode    `json:"modes" db:"-"`
}
