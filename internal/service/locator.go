package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shenikar/ambulance_dispatch_system/internal/geo"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultNearestLimit = 5

// rankHospitals сортирует больницы по расстоянию до point.
// Сортировка устойчивая: при равных расстояниях сохраняется порядок хранилища.
// limit <= 0 - без обрезки.
func rankHospitals(hospitals []*models.Hospital, point models.Location, limit int) []models.HospitalWithDistance {
	ranked := make([]models.HospitalWithDistance, 0, len(hospitals))
	for _, h := range hospitals {
		ranked = append(ranked, models.HospitalWithDistance{
			Hospital: h,
			Distance: geo.Distance(point, h.Location.Point()),
		})
	}
	slices.SortStableFunc(ranked, func(a, b models.HospitalWithDistance) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// NearestHospitals возвращает до limit больниц, ближайших к точке
func (s *dispatchService) NearestHospitals(ctx context.Context, point models.Location, limit int) ([]models.HospitalWithDistance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "NearestHospitals",
		"latitude":  point.Latitude,
		"longitude": point.Longitude,
		"limit":     limit,
	})

	hospitals, err := s.repo.ListHospitals(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list hospitals from repository")
		return nil, fmt.Errorf("service: could not list hospitals: %w", err)
	}

	ranked := rankHospitals(hospitals, point, limit)
	log.WithField("count", len(ranked)).Debug("Nearest hospitals ranked")
	return ranked, nil
}
