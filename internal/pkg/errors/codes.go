package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	// ErrMalformedLocation - строка не является ни парой координат, ни адресом
	ErrMalformedLocation = New(
		"MALFORMED_LOCATION",
		"Location must be a \"lat,lng\" pair or a place name",
		http.StatusBadRequest,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrGeocoderUnavailable = New(
		"GEOCODER_UNAVAILABLE",
		"Geocoding service is unavailable, enter coordinates as \"lat,lng\"",
		http.StatusServiceUnavailable,
	)

	ErrInvalidPreferences = New(
		"INVALID_PREFERENCES",
		"Invalid preference values",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Коды предупреждений в ответе планировщика
const (
	WarnProviderUnavailable = "PROVIDER_UNAVAILABLE"
	WarnNoCandidates        = "NO_CANDIDATES"
	WarnNoFeasibleRoute     = "NO_FEASIBLE_ROUTE"
)
