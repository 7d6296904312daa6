package service

import (
	"context"
	"fmt"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// filterAvailable оставляет свободные машины больницы hospitalID в порядке хранилища.
// Машины из exclude пропускаются.
func filterAvailable(ambulances []*models.Ambulance, hospitalID string, exclude map[string]struct{}) []*models.Ambulance {
	available := make([]*models.Ambulance, 0)
	for _, a := range ambulances {
		if a.HospitalID != hospitalID || !a.IsAvailable() {
			continue
		}
		if _, skip := exclude[a.AmbulanceID]; skip {
			continue
		}
		available = append(available, a)
	}
	return available
}

// AvailableAmbulances возвращает свободные машины больницы
func (s *dispatchService) AvailableAmbulances(ctx context.Context, hospitalID string) ([]*models.Ambulance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "AvailableAmbulances",
		"hospital_id": hospitalID,
	})

	ambulances, err := s.repo.ListAmbulances(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list ambulances from repository")
		return nil, fmt.Errorf("service: could not list ambulances: %w", err)
	}

	available := filterAvailable(ambulances, hospitalID, nil)
	log.WithField("count", len(available)).Debug("Available ambulances listed")
	return available, nil
}
