package service

import (
	"context"
	"fmt"
	"math"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

// selectDispatch выбирает ближайшую из nearestLimit больниц, у которой есть свободная машина.
// Просматриваются все кандидаты, берётся первая свободная машина выбранной больницы.
func (s *dispatchService) selectDispatch(ctx context.Context, point models.Location, exclude map[string]struct{}) (*models.Selection, error) {
	candidates, err := s.NearestHospitals(ctx, point, s.nearestLimit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, models.ErrNoHospitalsFound
	}

	ambulances, err := s.repo.ListAmbulances(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list ambulances: %w", err)
	}

	var best *models.Selection
	bestDistance := math.Inf(1)
	for _, c := range candidates {
		available := filterAvailable(ambulances, c.Hospital.HospitalID, exclude)
		if len(available) == 0 {
			continue
		}
		if c.Distance < bestDistance {
			best = &models.Selection{
				Hospital:  c.Hospital,
				Ambulance: available[0],
				Distance:  c.Distance,
			}
			bestDistance = c.Distance
		}
	}

	if best == nil {
		return nil, models.ErrNoAvailableAmbulance
	}
	return best, nil
}
