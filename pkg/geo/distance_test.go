package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// one degree of longitude on the equator
	d := CalculateHaversineDistance(0, 0, 0, 1)
	assert.InDelta(t, 111.195, d, 0.01)

	// symmetric
	assert.InDelta(t, d, CalculateHaversineDistance(0, 1, 0, 0), 1e-12)

	// coincident points
	assert.Equal(t, 0.0, CalculateHaversineDistance(24.9, 67.1, 24.9, 67.1))
}

func TestHaversineKarachiRoute(t *testing.T) {
	// jinnah airport to clifton beach, roughly 18.5 km great circle
	d := CalculateHaversineDistance(24.90210, 67.16766, 24.81407, 67.01060)
	assert.InDelta(t, 18.6, d, 0.5)
}

func TestGetDestinationPoint(t *testing.T) {
	lat, lon := GetDestinationPoint(0, 0, 90, 111.195)
	assert.InDelta(t, 0.0, lat, 1e-6)
	assert.InDelta(t, 1.0, lon, 1e-3)
}

func TestPolylineFromCoords(t *testing.T) {
	coords := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}
	// reference encoding from the google polyline algorithm docs
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", PolylineFromCoords(coords))
}
