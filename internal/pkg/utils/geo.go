package utils

import (
	"github.com/golang/geo/s2"
	"github.com/route-planner/internal/domain"
)

// EarthRadiusMeters - радиус сферической модели Земли
const EarthRadiusMeters = 6371000.0

// Haversine возвращает расстояние по большой окружности между двумя точками в метрах.
// Симметрична и равна нулю для совпадающих точек.
func Haversine(a, b domain.Coordinate) float64 {
	return HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
}

// HaversineDistance вычисляет расстояние между двумя точками в метрах.
// Точки упорядочиваются, чтобы результат не зависел от порядка аргументов
// вплоть до последнего бита.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat2 < lat1 || (lat2 == lat1 && lon2 < lon1) {
		lat1, lon1, lat2, lon2 = lat2, lon2, lat1, lon1
	}
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
