package repository

import (
	"context"

	"github.com/route-planner/internal/domain"
)

// TransitSearchRepository - поиск вариантов маршрута общественным транспортом
type TransitSearchRepository interface {
	// SearchPaths возвращает варианты маршрута в порядке провайдера
	SearchPaths(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RawPath, error)
}

// GeocodingRepository - геокодирование адресов и названий мест
type GeocodingRepository interface {
	// Geocode возвращает кандидатов, упорядоченных по релевантности
	Geocode(ctx context.Context, query string) ([]domain.GeocodeCandidate, error)
}

// MapRenderer строит отображаемый артефакт карты для маршрута
type MapRenderer interface {
	Render(route domain.Route, origin, destination domain.Coordinate) ([]byte, error)
}
