package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// Dispatch подбирает больницу и машину для вызова и закрепляет назначение.
// Если машину перехватили между подбором и закреплением, подбор повторяется без неё.
func (s *dispatchService) Dispatch(ctx context.Context, request *models.EmergencyRequest) (*models.EmergencyResponse, error) {
	if request.RequestID == "" {
		request.RequestID = uuid.NewString()
	}
	if request.Timestamp.IsZero() {
		request.Timestamp = s.timestamp()
	}
	if request.Status == "" {
		request.Status = models.RequestRequested
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":        "dispatch",
		"method":         "Dispatch",
		"request_id":     request.RequestID,
		"emergency_type": request.EmergencyType,
	})
	log.Info("Dispatching emergency request")

	lockCtx, cancelLock := context.WithTimeout(ctx, s.lockTimeout)
	release, err := s.locker.Acquire(lockCtx, requestLockKey(request.RequestID))
	cancelLock()
	if err != nil {
		log.WithError(err).Warn("Request is already being dispatched")
		return nil, fmt.Errorf("service: lock request %s: %v: %w", request.RequestID, err, models.ErrAmbulanceConflict)
	}
	defer release()

	// Повторный вызов с тем же request_id получает уже закреплённое назначение
	if existing, err := s.repo.GetResponse(ctx, request.RequestID); err == nil {
		log.WithField("ambulance_id", existing.AmbulanceID).Info("Request already dispatched, returning stored response")
		return existing, nil
	}

	exclude := make(map[string]struct{})
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		sel, err := s.selectDispatch(ctx, request.UserLocation, exclude)
		if err != nil {
			log.WithError(err).Warn("No dispatch candidate")
			return nil, fmt.Errorf("service: could not select ambulance: %w", err)
		}

		response, err := s.commit(ctx, request, sel)
		if errors.Is(err, models.ErrAmbulanceConflict) {
			log.WithFields(logrus.Fields{
				"attempt":      attempt,
				"ambulance_id": sel.Ambulance.AmbulanceID,
			}).Warn("Ambulance conflict, retrying selection")
			exclude[sel.Ambulance.AmbulanceID] = struct{}{}
			continue
		}
		if err != nil {
			return nil, err
		}

		s.publish(ctx, response)
		log.WithFields(logrus.Fields{
			"hospital_id":  response.HospitalID,
			"ambulance_id": response.AmbulanceID,
			"eta_minutes":  response.EstimatedArrivalTime,
		}).Info("Emergency request dispatched")
		return response, nil
	}

	log.WithField("attempts", s.maxAttempts).Error("Dispatch gave up after repeated conflicts")
	return nil, fmt.Errorf("service: gave up after %d attempts: %w", s.maxAttempts, models.ErrAmbulanceConflict)
}

func requestLockKey(requestID string) string {
	return "request:" + requestID
}

// publish отправляет событие назначения; ошибка только логируется
func (s *dispatchService) publish(ctx context.Context, response *models.EmergencyResponse) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), notify.NewAssignmentEvent(response)); err != nil {
		s.logger.WithError(err).WithField("request_id", response.RequestID).Warn("Failed to publish assignment event")
	}
}

// GetResponse возвращает сохранённый ответ на вызов
func (s *dispatchService) GetResponse(ctx context.Context, requestID string) (*models.EmergencyResponse, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "GetResponse",
		"request_id": requestID,
	})

	response, err := s.repo.GetResponse(ctx, requestID)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency response")
		return nil, fmt.Errorf("service: could not get response: %w", err)
	}
	return response, nil
}
