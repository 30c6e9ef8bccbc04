package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for all distance math.
const EarthRadiusKm = 6371.0

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `bson:"lat" json:"lat"`
	Longitude float64 `bson:"lng" json:"lng"`
}

// Distance returns the great-circle distance between two points in km
// using the haversine formula.
func Distance(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// BoundingBox is a rectangular lat/lng pre-filter approximating a circle.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoxAround returns the flat-earth bounding box for a radius (km) around a
// center point. The longitude span widens with latitude; near the poles the
// box degenerates to the full longitude range.
func BoxAround(center Coordinates, radiusKm float64) BoundingBox {
	latRange := radiusKm / EarthRadiusKm * 180 / math.Pi

	lngRange := 180.0
	if cosLat := math.Cos(center.Latitude * math.Pi / 180); cosLat > 1e-9 {
		lngRange = latRange / cosLat
	}

	return BoundingBox{
		MinLat: center.Latitude - latRange,
		MaxLat: center.Latitude + latRange,
		MinLng: center.Longitude - lngRange,
		MaxLng: center.Longitude + lngRange,
	}
}
