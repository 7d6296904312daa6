package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/ledger"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const verificationPending = "pending"

// RegisterHospital записывает больницу в реестр и в хранилище; возвращает идентификатор якоря
func (s *dispatchService) RegisterHospital(ctx context.Context, hospital *models.Hospital) (string, error) {
	if hospital.HospitalID == "" {
		hospital.HospitalID = uuid.NewString()
	}
	if hospital.VerificationStatus == "" {
		hospital.VerificationStatus = verificationPending
	}
	hospital.Timestamp = s.timestamp()

	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "RegisterHospital",
		"hospital_id": hospital.HospitalID,
		"name":        hospital.Name,
	})
	log.Info("Attempting to register hospital")

	payload, err := json.Marshal(hospital)
	if err != nil {
		return "", fmt.Errorf("service: marshal hospital: %w", err)
	}
	anchorID, err := s.submit(ctx, ledger.TagHospitalRegistry, payload)
	if err != nil {
		log.WithError(err).Error("Failed to anchor hospital registration")
		return "", fmt.Errorf("service: could not anchor hospital: %w", err)
	}

	if err := s.repo.SaveHospital(context.WithoutCancel(ctx), hospital, anchorID); err != nil {
		log.WithError(err).WithField("anchor_id", anchorID).Error("Anchored hospital was not stored locally")
		return "", fmt.Errorf("service: could not save hospital: %w", err)
	}

	log.WithField("anchor_id", anchorID).Info("Hospital registered successfully")
	return anchorID, nil
}

// RegisterAmbulance записывает машину в реестр и в хранилище; возвращает идентификатор якоря
func (s *dispatchService) RegisterAmbulance(ctx context.Context, ambulance *models.Ambulance) (string, error) {
	if ambulance.AmbulanceID == "" {
		ambulance.AmbulanceID = uuid.NewString()
	}
	status := ambulance.CurrentStatus
	if status == "" {
		status = models.AmbulanceAvailable
	}
	ambulance.SetStatus(status, s.timestamp())

	log := s.logger.WithFields(logrus.Fields{
		"service":      "dispatch",
		"method":       "RegisterAmbulance",
		"ambulance_id": ambulance.AmbulanceID,
		"hospital_id":  ambulance.HospitalID,
	})
	log.Info("Attempting to register ambulance")

	payload, err := json.Marshal(ambulance)
	if err != nil {
		return "", fmt.Errorf("service: marshal ambulance: %w", err)
	}
	anchorID, err := s.submit(ctx, ledger.TagAmbulanceRegistry, payload)
	if err != nil {
		log.WithError(err).Error("Failed to anchor ambulance registration")
		return "", fmt.Errorf("service: could not anchor ambulance: %w", err)
	}

	if err := s.repo.SaveAmbulance(context.WithoutCancel(ctx), ambulance, anchorID); err != nil {
		log.WithError(err).WithField("anchor_id", anchorID).Error("Anchored ambulance was not stored locally")
		return "", fmt.Errorf("service: could not save ambulance: %w", err)
	}

	log.WithField("anchor_id", anchorID).Info("Ambulance registered successfully")
	return anchorID, nil
}

// ListHospitals возвращает все зарегистрированные больницы
func (s *dispatchService) ListHospitals(ctx context.Context) ([]*models.Hospital, error) {
	hospitals, err := s.repo.ListHospitals(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list hospitals from repository")
		return nil, fmt.Errorf("service: could not list hospitals: %w", err)
	}
	return hospitals, nil
}

// AnchorRecord пишет произвольную запись в реестр; так узел обслуживает других диспетчеров
func (s *dispatchService) AnchorRecord(ctx context.Context, tag string, payload []byte) (string, error) {
	anchorID, err := s.submit(ctx, tag, payload)
	if err != nil {
		s.logger.WithError(err).WithField("tag", tag).Warn("Failed to anchor record")
		return "", fmt.Errorf("service: could not anchor record: %w", err)
	}
	return anchorID, nil
}

// GetLedgerBlock возвращает блок реестра по идентификатору якоря
func (s *dispatchService) GetLedgerBlock(ctx context.Context, anchorID string) (*ledger.Block, error) {
	ledgerCtx, cancel := context.WithTimeout(ctx, s.ledgerTimeout)
	defer cancel()

	block, err := s.ledger.Fetch(ledgerCtx, anchorID)
	if err != nil {
		s.logger.WithError(err).WithField("anchor_id", anchorID).Warn("Failed to fetch ledger block")
		return nil, fmt.Errorf("service: could not fetch block: %w", err)
	}
	return block, nil
}
