package geo

import (
	"math"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

// EarthRadiusKm - средний радиус Земли, км
const EarthRadiusKm = 6371.0

// Distance возвращает расстояние по дуге большого круга (формула гаверсинусов) в километрах
func Distance(a, b models.Location) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
