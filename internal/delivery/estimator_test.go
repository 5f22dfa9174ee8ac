package delivery

import (
	"testing"
	"time"

	"github.com/polattozlu/munch-gokhan/pkg/types"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCalculateIdenticalPointsHitsFloor(t *testing.T) {
	t.Parallel()

	origin := types.Location{Latitude: 41.0, Longitude: 29.0}
	for _, factor := range []float64{1.1, 1.5, 3.0} {
		est := NewEstimator(FixedTraffic{F: factor}, nil).Calculate(origin, origin)
		if est.DistanceKm != 0 {
			t.Fatalf("expected zero distance, got %v", est.DistanceKm)
		}
		if est.DurationMinutes != 20 {
			t.Fatalf("expected 20 minute floor at factor %v, got %d", factor, est.DurationMinutes)
		}
		if est.DeliveryFee != 5.00 {
			t.Fatalf("expected base fee, got %v", est.DeliveryFee)
		}
	}
}

func TestCalculateKnownDistances(t *testing.T) {
	t.Parallel()

	user := types.Location{Latitude: 41.0000, Longitude: 29.0000}
	near := types.Location{Latitude: 41.0000, Longitude: 29.0050}
	far := types.Location{Latitude: 41.0500, Longitude: 29.0000}

	estimator := NewEstimator(FixedTraffic{F: 1.2}, nil)

	nearEst := estimator.Calculate(user, near)
	if nearEst.DistanceKm != 0.42 {
		t.Fatalf("expected 0.42 km, got %v", nearEst.DistanceKm)
	}
	if nearEst.DeliveryFee != 6.05 {
		t.Fatalf("expected fee 6.05, got %v", nearEst.DeliveryFee)
	}
	if nearEst.DurationMinutes != 20 {
		t.Fatalf("expected floor duration, got %d", nearEst.DurationMinutes)
	}

	farEst := estimator.Calculate(user, far)
	if farEst.DistanceKm != 5.56 {
		t.Fatalf("expected 5.56 km, got %v", farEst.DistanceKm)
	}
	if farEst.DistanceKm <= nearEst.DistanceKm {
		t.Fatal("far restaurant must rank farther than near one")
	}
}

func TestCalculateInvalidCoordinatesFallsBack(t *testing.T) {
	t.Parallel()

	estimator := NewEstimator(FixedTraffic{F: 1.2}, nil)
	est := estimator.Calculate(
		types.Location{Latitude: 200, Longitude: 29},
		types.Location{Latitude: 41, Longitude: 29},
	)

	want := FallbackEstimate()
	if est != want {
		t.Fatalf("expected fallback %+v, got %+v", want, est)
	}
}

func TestClockTrafficFactors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		at   time.Time
		want float64
	}{
		{name: "saturday", at: time.Date(2025, time.August, 30, 9, 0, 0, 0, time.UTC), want: 1.1},
		{name: "sunday evening", at: time.Date(2025, time.August, 31, 18, 0, 0, 0, time.UTC), want: 1.1},
		{name: "weekday morning rush", at: time.Date(2025, time.August, 25, 8, 30, 0, 0, time.UTC), want: 1.5},
		{name: "weekday rush boundary", at: time.Date(2025, time.August, 25, 10, 59, 0, 0, time.UTC), want: 1.5},
		{name: "weekday evening rush", at: time.Date(2025, time.August, 25, 17, 0, 0, 0, time.UTC), want: 1.5},
		{name: "weekday lunch", at: time.Date(2025, time.August, 25, 13, 0, 0, 0, time.UTC), want: 1.3},
		{name: "weekday off-peak", at: time.Date(2025, time.August, 25, 15, 0, 0, 0, time.UTC), want: 1.2},
		{name: "weekday night", at: time.Date(2025, time.August, 25, 23, 0, 0, 0, time.UTC), want: 1.2},
	}

	model := ClockTraffic{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := model.Factor(tc.at); got != tc.want {
				t.Fatalf("factor at %v: expected %v, got %v", tc.at, tc.want, got)
			}
		})
	}
}

func TestEstimatorUsesInjectedClock(t *testing.T) {
	t.Parallel()

	user := types.Location{Latitude: 41.0000, Longitude: 29.0000}
	far := types.Location{Latitude: 41.0500, Longitude: 29.0000}

	// Rush hour pushes the same trip above the 20 minute floor.
	rush := NewEstimator(ClockTraffic{}, fixedClock(time.Date(2025, time.August, 25, 8, 30, 0, 0, time.UTC)))
	offPeak := NewEstimator(ClockTraffic{}, fixedClock(time.Date(2025, time.August, 25, 15, 0, 0, 0, time.UTC)))

	if rushEst, offEst := rush.Calculate(user, far), offPeak.Calculate(user, far); rushEst.DurationMinutes <= offEst.DurationMinutes {
		t.Fatalf("rush hour must be slower: %d vs %d", rushEst.DurationMinutes, offEst.DurationMinutes)
	}
}
