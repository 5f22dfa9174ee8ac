package delivery

import (
	"math"
	"time"

	"github.com/polattozlu/munch-gokhan/pkg/types"
)

const (
	earthRadiusKm    = 6371.0
	baseSpeedKmh     = 25.0
	prepMinutes      = 15
	minDurationMin   = 20
	baseFee          = 5.00
	perKmFee         = 2.50
	fallbackDistance = 5.0
	fallbackDuration = 30
	fallbackFee      = 8.00
)

// Estimate is a derived per-restaurant delivery quote, never persisted.
type Estimate struct {
	DistanceKm      float64 `json:"distanceKm"`
	DurationMinutes int     `json:"durationMinutes"`
	DeliveryFee     float64 `json:"deliveryFee"`
}

// FallbackEstimate is returned whenever a calculation cannot be completed.
func FallbackEstimate() Estimate {
	return Estimate{
		DistanceKm:      fallbackDistance,
		DurationMinutes: fallbackDuration,
		DeliveryFee:     fallbackFee,
	}
}

// Estimator converts coordinate pairs into distance, duration, and fee
// quotes using a swappable traffic model.
type Estimator struct {
	traffic TrafficModel
	now     func() time.Time
}

// NewEstimator builds an estimator. A nil traffic model falls back to the
// clock-based production model; a nil clock uses time.Now.
func NewEstimator(traffic TrafficModel, now func() time.Time) *Estimator {
	if traffic == nil {
		traffic = ClockTraffic{}
	}
	if now == nil {
		now = time.Now
	}
	return &Estimator{traffic: traffic, now: now}
}

// Calculate returns the delivery quote between two points. Any input the
// math cannot handle yields the fixed fallback instead of an error.
func (e *Estimator) Calculate(origin, destination types.Location) Estimate {
	if !validCoordinates(origin) || !validCoordinates(destination) {
		return FallbackEstimate()
	}

	distance := haversineKm(origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return FallbackEstimate()
	}

	factor := e.traffic.Factor(e.now())
	duration := int(math.Ceil(distance/baseSpeedKmh*60*factor)) + prepMinutes
	if duration < minDurationMin {
		duration = minDurationMin
	}

	return Estimate{
		DistanceKm:      roundTo2(distance),
		DurationMinutes: duration,
		DeliveryFee:     roundTo2(baseFee + distance*perKmFee),
	}
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}

func validCoordinates(loc types.Location) bool {
	if math.IsNaN(loc.Latitude) || math.IsNaN(loc.Longitude) {
		return false
	}
	if math.IsInf(loc.Latitude, 0) || math.IsInf(loc.Longitude, 0) {
		return false
	}
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180
}
