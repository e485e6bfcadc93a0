package domain

import "time"

// Stream names
const (
	StreamRouteHistory = "stream:route:history"
)

// RouteHistoryEvent - событие об использованном маршруте, публикуется в режиме обучения
type RouteHistoryEvent struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	Timestamp   time.Time `json:"timestamp"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	TotalMin    float64   `json:"total_min"`
	Modes       []Mode    `json:"modes"`
}

// ToRecord converts the event into a history record.
func (e *RouteHistoryEvent) ToRecord() HistoryRecord {
	profileID := e.ProfileID
	if profileID == "" {
		profileID = DefaultProfileID
	}
	return HistoryRecord{
		ID:          e.ID,
		ProfileID:   profileID,
		CreatedAt:   e.Timestamp,
		Origin:      e.Origin,
		Destination: e.Destination,
		TotalMin:    e.TotalMin,
		Modes:       e.Modes,
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
