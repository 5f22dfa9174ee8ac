package delivery

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/polattozlu/munch-gokhan/pkg/types"
)

const cityIstanbul = "İstanbul"

// geocodePool is the fixed set of district coordinates the simulated
// forward geocoder draws from.
var geocodePool = []types.Location{
	{Latitude: 40.9903, Longitude: 29.0275, District: "Kadıköy", City: cityIstanbul},
	{Latitude: 41.0367, Longitude: 28.9840, District: "Beyoğlu", City: cityIstanbul},
	{Latitude: 41.0484, Longitude: 29.0141, District: "Şişli", City: cityIstanbul},
	{Latitude: 41.0766, Longitude: 29.0634, District: "Beşiktaş", City: cityIstanbul},
	{Latitude: 41.0183, Longitude: 28.9639, District: "Fatih", City: cityIstanbul},
}

var reverseDistricts = []string{"Kadıköy", "Beyoğlu", "Şişli", "Beşiktaş", "Fatih", "Üsküdar"}

// Geocoder simulates forward and reverse geocoding against a fixed Istanbul
// district pool. There is no real mapping provider behind it; a missing
// result is a soft "no location", never an error.
type Geocoder struct {
	randInt func(n int) int
}

// NewGeocoder builds the simulated geocoder. A nil source uses math/rand.
func NewGeocoder(randInt func(n int) int) *Geocoder {
	if randInt == nil {
		randInt = rand.Intn
	}
	return &Geocoder{randInt: randInt}
}

// Geocode maps free-text input to a plausible district location. Blank
// input resolves to no location.
func (g *Geocoder) Geocode(address string) *types.Location {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil
	}

	picked := geocodePool[g.randInt(len(geocodePool))]
	return &types.Location{
		Latitude:  picked.Latitude,
		Longitude: picked.Longitude,
		Address:   trimmed,
		District:  picked.District,
		City:      picked.City,
	}
}

// ReverseGeocode produces an approximate street address for the given
// coordinates.
func (g *Geocoder) ReverseGeocode(latitude, longitude float64) types.Location {
	district := reverseDistricts[g.randInt(len(reverseDistricts))]
	return types.Location{
		Latitude:  latitude,
		Longitude: longitude,
		Address:   fmt.Sprintf("%s Mahallesi, Örnek Sokak No:%d", district, g.randInt(100)+1),
		District:  district,
		City:      cityIstanbul,
	}
}
