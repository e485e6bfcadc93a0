package render

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"github.com/twpayne/go-polyline"
)

// Цвета линий по видам транспорта
var modeColors = map[domain.Mode]string{
	domain.ModeSubway: "#1f77b4",
	domain.ModeBus:    "#2ca02c",
	domain.ModeWalk:   "#7f7f7f",
}

type geoJSONRenderer struct{}

// NewGeoJSONRenderer создает рендерер маршрута в GeoJSON FeatureCollection
func NewGeoJSONRenderer() repository.MapRenderer {
	return &geoJSONRenderer{}
}

// Render возвращает GeoJSON: по одной линии на сегмент плюс точки начала и конца.
// Сегменты без геометрии соединяют соседние участки прямой.
func (r *geoJSONRenderer) Render(route domain.Route, origin, destination domain.Coordinate) ([]byte, error) {
	fc := BuildFeatureCollection(route, origin, destination)
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal geojson: %w", err)
	}
	return data, nil
}

// BuildFeatureCollection строит коллекцию объектов карты для маршрута
func BuildFeatureCollection(route domain.Route, origin, destination domain.Coordinate) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	bound := orb.Bound{Min: toPoint(origin), Max: toPoint(origin)}.Extend(toPoint(destination))

	for i, seg := range route.Segments {
		line := segmentLine(route, i, origin, destination)
		if len(line) < 2 {
			continue
		}
		bound = bound.Union(line.Bound())

		f := geojson.NewFeature(line)
		f.Properties["kind"] = "segment"
		f.Properties["index"] = i
		f.Properties["mode"] = string(seg.Mode)
		f.Properties["name"] = seg.Name
		f.Properties["duration_min"] = seg.DurationMin
		f.Properties["distance_m"] = seg.DistanceM
		f.Properties["crowd"] = seg.Crowd
		f.Properties["color"] = modeColors[seg.Mode]
		if seg.BestCar != nil {
			f.Properties["best_car"] = *seg.BestCar
		}
		fc.Append(f)
	}

	start := geojson.NewFeature(toPoint(origin))
	start.Properties["kind"] = "origin"
	fc.Append(start)

	end := geojson.NewFeature(toPoint(destination))
	end.Properties["kind"] = "destination"
	fc.Append(end)

	fc.BBox = geojson.NewBBox(bound)
	return fc
}

// segmentLine returns the drawable geometry of segment i, anchoring
// geometry-less segments to their neighbours or to the trip endpoints.
func segmentLine(route domain.Route, i int, origin, destination domain.Coordinate) orb.LineString {
	seg := route.Segments[i]
	if len(seg.Poly) >= 2 {
		line := make(orb.LineString, 0, len(seg.Poly))
		for _, c := range seg.Poly {
			line = append(line, toPoint(c))
		}
		return line
	}

	from := origin
	for j := i - 1; j >= 0; j-- {
		if p := route.Segments[j].Poly; len(p) > 0 {
			from = p[len(p)-1]
			break
		}
	}
	to := destination
	for j := i + 1; j < len(route.Segments); j++ {
		if p := route.Segments[j].Poly; len(p) > 0 {
			to = p[0]
			break
		}
	}

	line := orb.LineString{toPoint(from)}
	if len(seg.Poly) == 1 {
		line = append(line, toPoint(seg.Poly[0]))
	}
	line = append(line, toPoint(to))
	return line
}

// EncodePolyline кодирует геометрию сегмента в формате Google Encoded Polyline
func EncodePolyline(poly []domain.Coordinate) string {
	if len(poly) == 0 {
		return ""
	}
	coords := make([][]float64, len(poly))
	for i, c := range poly {
		coords[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline - обратная операция к EncodePolyline
func DecodePolyline(encoded string) ([]domain.Coordinate, error) {
	if encoded == "" {
		return []domain.Coordinate{}, nil
	}
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}
	out := make([]domain.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = domain.Coordinate{Lat: c[0], Lon: c[1]}
	}
	return out, nil
}

func toPoint(c domain.Coordinate) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}
