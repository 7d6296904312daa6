package geo

import "math"

// AverageSpeedKmh - средняя скорость скорой помощи для оценки времени прибытия
const AverageSpeedKmh = 60.0

// ETAMinutes переводит расстояние в минуты пути, округляя до целого. Минимум - 1 минута.
func ETAMinutes(distanceKm float64) int {
	minutes := int(math.Round(distanceKm / AverageSpeedKmh * 60.0))
	if minutes < 1 {
		return 1
	}
	return minutes
}
