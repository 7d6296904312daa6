package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shenikar/ambulance_dispatch_system/internal/geo"
	"github.com/shenikar/ambulance_dispatch_system/internal/ledger"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// commit закрепляет выбор: сначала запись в реестр, затем локальное состояние.
// Пока держится блокировка машины, её статус перечитывается; если машину уже
// назначили, возвращается ErrAmbulanceConflict и ничего не меняется.
func (s *dispatchService) commit(ctx context.Context, request *models.EmergencyRequest, sel *models.Selection) (*models.EmergencyResponse, error) {
	ambulanceID := sel.Ambulance.AmbulanceID
	log := s.logger.WithFields(logrus.Fields{
		"service":      "dispatch",
		"method":       "commit",
		"request_id":   request.RequestID,
		"hospital_id":  sel.Hospital.HospitalID,
		"ambulance_id": ambulanceID,
	})

	lockCtx, cancelLock := context.WithTimeout(ctx, s.lockTimeout)
	release, err := s.locker.Acquire(lockCtx, ambulanceID)
	cancelLock()
	if err != nil {
		log.WithError(err).Warn("Failed to lock ambulance")
		return nil, fmt.Errorf("service: lock ambulance %s: %v: %w", ambulanceID, err, models.ErrAmbulanceConflict)
	}
	defer release()

	current, err := s.repo.GetAmbulance(ctx, ambulanceID)
	if err != nil || !current.IsAvailable() {
		log.Warn("Ambulance was taken before commit")
		return nil, fmt.Errorf("service: ambulance %s: %w", ambulanceID, models.ErrAmbulanceConflict)
	}

	// Дальше запрос не прерывается: отмена вызывающего не должна оставлять якорь без локальной записи
	ctx = context.WithoutCancel(ctx)
	now := s.timestamp()

	response := &models.EmergencyResponse{
		RequestID:            request.RequestID,
		HospitalID:           sel.Hospital.HospitalID,
		HospitalName:         sel.Hospital.Name,
		AmbulanceID:          ambulanceID,
		EstimatedArrivalTime: geo.ETAMinutes(sel.Distance),
		Distance:             sel.Distance,
		Status:               models.RequestAssigned,
		Timestamp:            now,
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("service: marshal response: %w", err)
	}
	anchorID, err := s.submit(ctx, ledger.TagEmergencyResponse, payload)
	if err != nil {
		log.WithError(err).Error("Failed to anchor emergency response")
		return nil, fmt.Errorf("service: could not anchor response: %w", err)
	}
	response.BlockchainTxID = anchorID
	log = log.WithField("anchor_id", anchorID)

	if err := s.repo.SaveResponse(ctx, response); err != nil {
		log.WithError(err).Error("Anchored response was not stored locally")
		return nil, fmt.Errorf("service: could not save response: %w", err)
	}

	dispatched := *current
	dispatched.SetStatus(models.AmbulanceDispatched, now)
	if err := s.repo.SaveAmbulance(ctx, &dispatched, anchorID); err != nil {
		log.WithError(err).Error("Anchored response stored but ambulance status was not updated")
		return nil, fmt.Errorf("service: could not update ambulance: %w", err)
	}

	if err := s.repo.MirrorResponse(ctx, response); err != nil {
		log.WithError(err).Error("Anchored response was not mirrored")
		return nil, fmt.Errorf("service: could not mirror response: %w", err)
	}

	log.Info("Assignment committed")
	return response, nil
}

// submit пишет в реестр с ограничением по времени; любая ошибка без категории
// считается недоступностью реестра
func (s *dispatchService) submit(ctx context.Context, tag string, payload []byte) (string, error) {
	ledgerCtx, cancel := context.WithTimeout(ctx, s.ledgerTimeout)
	defer cancel()

	anchorID, err := s.ledger.Submit(ledgerCtx, tag, payload)
	if err != nil {
		if errors.Is(err, ledger.ErrLedgerRejected) || errors.Is(err, ledger.ErrLedgerUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%v: %w", err, ledger.ErrLedgerUnavailable)
	}
	if anchorID == "" {
		return "", fmt.Errorf("empty anchor id: %w", ledger.ErrLedgerUnavailable)
	}
	return anchorID, nil
}
