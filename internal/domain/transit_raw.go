package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// TrafficType - код вида транспорта у провайдера поиска маршрутов
type TrafficType int

const (
	TrafficTypeSubway TrafficType = 1
	TrafficTypeBus    TrafficType = 2
	TrafficTypeWalk   TrafficType = 3
)

// Mode maps a provider code onto a Mode. Unknown and missing codes map to
// WALK so that an unrecognised leg still renders.
func (t TrafficType) Mode() Mode {
	switch t {
	case TrafficTypeSubway:
		return ModeSubway
	case TrafficTypeBus:
		return ModeBus
	default:
		return ModeWalk
	}
}

// FlexFloat accepts a JSON number, a numeric string or null.
// Anything unparsable decodes to zero.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	s := string(data)
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the value as float64.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// OptionalInt - необязательное целое поле ответа провайдера
type OptionalInt struct {
	Value int
	Valid bool
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		*o = OptionalInt{}
		return nil
	}
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*o = OptionalInt{Value: int(f), Valid: true}
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}

// RawLane - сведения о линии (метро) или автобусном маршруте
type RawLane struct {
	Name       string `json:"name,omitempty"`
	LaneName   string `json:"laneName,omitempty"`
	SubwayName string `json:"subwayName,omitempty"`
	BusNo      string `json:"busNo,omitempty"`
	SubwayCode int    `json:"subwayCode,omitempty"`
	Type       int    `json:"type,omitempty"`
}

// RawStation - промежуточная остановка; координаты приходят строками
type RawStation struct {
	Index       int       `json:"index"`
	StationName string    `json:"stationName,omitempty"`
	X           FlexFloat `json:"x"`
	Y           FlexFloat `json:"y"`
}

// RawPassStopList - список промежуточных остановок
type RawPassStopList struct {
	Stations []RawStation `json:"stations"`
}

// RawSubPath - один участок пути в ответе провайдера.
// Все поля, кроме TrafficType, необязательны.
type RawSubPath struct {
	TrafficType  TrafficType      `json:"trafficType"`
	SectionTime  FlexFloat        `json:"sectionTime"`
	Distance     FlexFloat        `json:"distance"`
	Lane         []RawLane        `json:"lane,omitempty"`
	PassStopList *RawPassStopList `json:"passStopList,omitempty"`
	StartName    string           `json:"startName,omitempty"`
	EndName      string           `json:"endName,omitempty"`
	Crowd        OptionalInt      `json:"crowd"`
	BestCar      OptionalInt      `json:"bestCar"`
}

// RawPathInfo - сводка по пути
type RawPathInfo struct {
	TotalTime          FlexFloat `json:"totalTime"`
	TotalDistance      FlexFloat `json:"totalDistance"`
	Payment            FlexFloat `json:"payment"`
	BusTransitCount    int       `json:"busTransitCount"`
	SubwayTransitCount int       `json:"subwayTransitCount"`
}

// RawPath - один вариант маршрута в ответе провайдера
type RawPath struct {
	PathType int          `json:"pathType"`
	Info     RawPathInfo  `json:"info"`
	SubPath  []RawSubPath `json:"subPath"`
}
