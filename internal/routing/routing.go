package routing

// Point is a geographic coordinate (longitude, latitude), ordered the way
// routing services expect them on the wire.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Provider identifies which strategy in the fallback chain produced a result.
type Provider string

const (
	ProviderOSRM      Provider = "OSRM"
	ProviderHaversine Provider = "HAVERSINE"
	ProviderStatic    Provider = "STATIC"
)

// Result is a resolved route leg between two points.
type Result struct {
	DistanceKm    float64  `json:"distance_km"`
	TravelTimeMin int      `json:"travel_time_min"`
	Provider      Provider `json:"provider"`
}

// Config carries the per-call routing options.
type Config struct {
	BaseURL string
	Profile string
}
