package delivery

import "time"

// TrafficModel maps a point in time to a congestion multiplier applied to
// the base travel duration.
type TrafficModel interface {
	Factor(at time.Time) float64
}

// ClockTraffic is the production model: light weekend traffic, heavy rush
// windows on weekdays, elevated lunch traffic, otherwise a mild baseline.
type ClockTraffic struct{}

func (ClockTraffic) Factor(at time.Time) float64 {
	day := at.Weekday()
	if day == time.Saturday || day == time.Sunday {
		return 1.1
	}

	hour := at.Hour()
	switch {
	case (hour >= 8 && hour <= 10) || (hour >= 17 && hour <= 19):
		return 1.5
	case hour >= 12 && hour <= 14:
		return 1.3
	default:
		return 1.2
	}
}

// FixedTraffic pins the multiplier, used by tests to assert exact outputs.
type FixedTraffic struct {
	F float64
}

func (f FixedTraffic) Factor(time.Time) float64 {
	return f.F
}
