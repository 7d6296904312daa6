package geo

import (
	"testing"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	p := models.Location{Latitude: 55.7558, Longitude: 37.6173}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_KnownValues(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     models.Location
		expected float64
		delta    float64
	}{
		{
			name:     "сотая градуса долготы на экваторе",
			a:        models.Location{Latitude: 0, Longitude: 0},
			b:        models.Location{Latitude: 0, Longitude: 0.01},
			expected: 1.1119,
			delta:    0.001,
		},
		{
			name:     "один градус широты",
			a:        models.Location{Latitude: 0, Longitude: 0},
			b:        models.Location{Latitude: 1, Longitude: 0},
			expected: 111.195,
			delta:    0.01,
		},
		{
			name:     "Москва - Санкт-Петербург",
			a:        models.Location{Latitude: 55.7558, Longitude: 37.6173},
			b:        models.Location{Latitude: 59.9343, Longitude: 30.3351},
			expected: 634.4,
			delta:    2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Distance(tc.a, tc.b), tc.delta)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := models.Location{Latitude: 12.97, Longitude: 77.59}
	b := models.Location{Latitude: 13.08, Longitude: 80.27}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestETAMinutes(t *testing.T) {
	testCases := []struct {
		distance float64
		expected int
	}{
		{0, 1},
		{0.4, 1},
		{1.11, 1},
		{2.6, 3},
		{10, 10},
		{45.6, 46},
		{120, 120},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ETAMinutes(tc.distance), "distance %v", tc.distance)
	}
}

func TestETAMinutes_Deterministic(t *testing.T) {
	assert.Equal(t, ETAMinutes(17.3), ETAMinutes(17.3))
}
