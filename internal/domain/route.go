package domain

// Mode - вид транспорта сегмента
type Mode string

const (
	ModeSubway Mode = "SUBWAY"
	ModeBus    Mode = "BUS"
	ModeWalk   Mode = "WALK"
)

// AllModes returns the modes in display order.
func AllModes() []Mode {
	return []Mode{ModeSubway, ModeBus, ModeWalk}
}

// IsValid reports whether m is one of the known modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeSubway, ModeBus, ModeWalk:
		return true
	}
	return false
}

const (
	// WalkSpeedMPS - средняя скорость пешехода, м/с
	WalkSpeedMPS = 1.3

	MinCrowd = 1
	MaxCrowd = 4
)

// WalkDurationMin converts a walking distance in meters into minutes.
func WalkDurationMin(distanceM float64) float64 {
	if distanceM <= 0 {
		return 0
	}
	return distanceM / (WalkSpeedMPS * 60)
}

// Segment - один участок маршрута одного вида транспорта
type Segment struct {
	Mode        Mode         `json:"mode"`
	Name        string       `json:"name"`
	DistanceM   float64      `json:"distance_m"`
	DurationMin float64      `json:"duration_min"`
	Crowd       int          `json:"crowd"`
	BestCar     *int         `json:"best_car,omitempty"`
	Poly        []Coordinate `json:"poly"`
}

// Route - упорядоченная последовательность сегментов от начала до конца поездки.
// Маршрут без сегментов не считается маршрутом.
type Route struct {
	Segments []Segment `json:"segments"`
}

// TotalDurationMin - суммарное время в пути, минуты
func (r Route) TotalDurationMin() float64 {
	var total float64
	for _, s := range r.Segments {
		total += s.DurationMin
	}
	return total
}

// TotalDistanceM - суммарная дистанция, метры
func (r Route) TotalDistanceM() float64 {
	var total float64
	for _, s := range r.Segments {
		total += s.DistanceM
	}
	return total
}

// WalkDurationMin - суммарное время пешком, минуты
func (r Route) WalkDurationMin() float64 {
	var total float64
	for _, s := range r.Segments {
		if s.Mode == ModeWalk {
			total += s.DurationMin
		}
	}
	return total
}

// MaxCrowd returns the highest crowd level over all segments.
func (r Route) MaxCrowd() int {
	max := 0
	for _, s := range r.Segments {
		if s.Crowd > max {
			max = s.Crowd
		}
	}
	return max
}

// Modes returns the distinct modes of the route in first-seen order.
func (r Route) Modes() []Mode {
	seen := make(map[Mode]bool, 3)
	modes := make([]Mode, 0, 3)
	for _, s := range r.Segments {
		if !seen[s.Mode] {
			seen[s.Mode] = true
			modes = append(modes, s.Mode)
		}
	}
	return modes
}

// Transfers - число пересадок между транспортными (не пешими) участками
func (r Route) Transfers() int {
	rides := 0
	for _, s := range r.Segments {
		if s.Mode != ModeWalk {
			rides++
		}
	}
	if rides == 0 {
		return 0
	}
	return rides - 1
}

// SelectionResult - результат выбора маршрута.
// BestIndex == -1 и Route == nil означают, что подходящего маршрута нет
// и вызывающая сторона должна построить запасной маршрут.
type SelectionResult struct {
	BestIndex int
	Route     *Route
}

// Found reports whether a route was chosen.
func (r SelectionResult) Found() bool {
	return r.Route != nil
}
