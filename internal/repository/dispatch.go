package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

// DispatchRepository даёт типизированный доступ к больницам, машинам и ответам.
// primary - основной кеш, mirror - необязательное вторичное представление.
type DispatchRepository struct {
	primary RecordStore
	mirror  RecordStore
	logger  *logrus.Logger
}

// NewDispatchRepository создаёт репозиторий; mirror может быть nil
func NewDispatchRepository(primary, mirror RecordStore, logger *logrus.Logger) service.DispatchRepository {
	return &DispatchRepository{
		primary: primary,
		mirror:  mirror,
		logger:  logger,
	}
}

// readCollection читает коллекцию; любая ошибка чтения превращается в пустой список
func (r *DispatchRepository) readCollection(ctx context.Context, store RecordStore, collection string) []json.RawMessage {
	records, err := store.List(ctx, collection)
	if err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"repository": "dispatch",
			"collection": collection,
		}).Warn("Store is unreadable, treating collection as empty")
		return nil
	}
	return records
}

// usePrimary решает, откуда читать коллекцию: из основного кеша или, пока в нём
// нет ни одной записи, из вторичного представления
func (r *DispatchRepository) usePrimary(ctx context.Context, collection string) bool {
	if r.mirror == nil || r.primaryHasRecords(ctx, collection) {
		return true
	}
	mirrored, err := r.mirror.Exists(ctx, collection)
	return err != nil || !mirrored
}

// primaryHasRecords - пустой файл или ключ ещё не делают основной кеш источником.
// Нечитаемый кеш считается источником: его содержимое читается как пустое.
func (r *DispatchRepository) primaryHasRecords(ctx context.Context, collection string) bool {
	ok, err := r.primary.Exists(ctx, collection)
	if err != nil {
		return true
	}
	if !ok {
		return false
	}
	records, err := r.primary.List(ctx, collection)
	return err != nil || len(records) > 0
}

// ListHospitals возвращает все больницы
func (r *DispatchRepository) ListHospitals(ctx context.Context) ([]*models.Hospital, error) {
	if !r.usePrimary(ctx, CollectionHospitals) {
		return r.mirrorHospitals(ctx), nil
	}

	hospitals := make([]*models.Hospital, 0)
	for _, raw := range r.readCollection(ctx, r.primary, CollectionHospitals) {
		var stored storedHospital
		if err := json.Unmarshal(raw, &stored); err != nil {
			r.skipRecord(CollectionHospitals, err)
			continue
		}
		h := stored.Hospital
		hospitals = append(hospitals, &h)
	}
	return hospitals, nil
}

func (r *DispatchRepository) mirrorHospitals(ctx context.Context) []*models.Hospital {
	hospitals := make([]*models.Hospital, 0)
	for _, raw := range r.readCollection(ctx, r.mirror, CollectionHospitals) {
		var sh serverHospital
		if err := json.Unmarshal(raw, &sh); err != nil || sh.ID == "" || sh.Name == "" {
			r.skipRecord(CollectionHospitals, err)
			continue
		}
		hospitals = append(hospitals, sh.toModel())
	}
	return hospitals
}

// ListAmbulances возвращает все машины скорой помощи
func (r *DispatchRepository) ListAmbulances(ctx context.Context) ([]*models.Ambulance, error) {
	if !r.usePrimary(ctx, CollectionAmbulances) {
		return r.mirrorAmbulances(ctx), nil
	}

	ambulances := make([]*models.Ambulance, 0)
	for _, raw := range r.readCollection(ctx, r.primary, CollectionAmbulances) {
		var stored storedAmbulance
		if err := json.Unmarshal(raw, &stored); err != nil {
			r.skipRecord(CollectionAmbulances, err)
			continue
		}
		a := stored.Ambulance
		ambulances = append(ambulances, &a)
	}
	return ambulances, nil
}

func (r *DispatchRepository) mirrorAmbulances(ctx context.Context) []*models.Ambulance {
	ambulances := make([]*models.Ambulance, 0)
	for _, raw := range r.readCollection(ctx, r.mirror, CollectionAmbulances) {
		var sa serverAmbulance
		if err := json.Unmarshal(raw, &sa); err != nil || sa.ID == "" {
			r.skipRecord(CollectionAmbulances, err)
			continue
		}
		ambulances = append(ambulances, sa.toModel())
	}
	return ambulances
}

// seedPrimary переносит записи вторичного представления в основной кеш перед первой
// записью в коллекцию, иначе после неё остальные записи пропали бы из чтения
func (r *DispatchRepository) seedPrimary(ctx context.Context, collection string) error {
	if r.usePrimary(ctx, collection) {
		return nil
	}

	var seeded int
	switch collection {
	case CollectionHospitals:
		for _, h := range r.mirrorHospitals(ctx) {
			stored := storedHospital{Hospital: *h, Timestamp: h.Timestamp}
			if err := r.upsertJSON(ctx, r.primary, collection, h.HospitalID, stored); err != nil {
				return err
			}
			seeded++
		}
	case CollectionAmbulances:
		for _, a := range r.mirrorAmbulances(ctx) {
			stored := storedAmbulance{Ambulance: *a, Timestamp: a.LastUpdated}
			if err := r.upsertJSON(ctx, r.primary, collection, a.AmbulanceID, stored); err != nil {
				return err
			}
			seeded++
		}
	}

	r.logger.WithFields(logrus.Fields{
		"repository": "dispatch",
		"collection": collection,
		"count":      seeded,
	}).Info("Seeded primary collection from mirror")
	return nil
}

func (r *DispatchRepository) skipRecord(collection string, err error) {
	entry := r.logger.WithFields(logrus.Fields{
		"repository": "dispatch",
		"collection": collection,
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("Skipping malformed record")
}

// GetAmbulance ищет машину в том же источнике, из которого её видит подбор
func (r *DispatchRepository) GetAmbulance(ctx context.Context, id string) (*models.Ambulance, error) {
	ambulances, err := r.ListAmbulances(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range ambulances {
		if a.AmbulanceID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("ambulance %s: %w", id, models.ErrRecordNotFound)
}

// SaveHospital сохраняет больницу вместе с идентификатором блока реестра
func (r *DispatchRepository) SaveHospital(ctx context.Context, hospital *models.Hospital, anchorID string) error {
	stored := storedHospital{
		Hospital:  *hospital,
		BlockID:   anchorID,
		Timestamp: hospital.Timestamp,
	}
	if err := r.seedPrimary(ctx, CollectionHospitals); err != nil {
		return err
	}
	return r.upsertJSON(ctx, r.primary, CollectionHospitals, hospital.HospitalID, stored)
}

// SaveAmbulance сохраняет машину в основной кеш и отражает статус во вторичное представление
func (r *DispatchRepository) SaveAmbulance(ctx context.Context, ambulance *models.Ambulance, anchorID string) error {
	stored := storedAmbulance{
		Ambulance: *ambulance,
		BlockID:   anchorID,
		Timestamp: ambulance.LastUpdated,
	}
	if err := r.seedPrimary(ctx, CollectionAmbulances); err != nil {
		return err
	}
	if err := r.upsertJSON(ctx, r.primary, CollectionAmbulances, ambulance.AmbulanceID, stored); err != nil {
		return err
	}
	return r.mirrorAmbulance(ctx, ambulance)
}

func (r *DispatchRepository) mirrorAmbulance(ctx context.Context, ambulance *models.Ambulance) error {
	if !r.mirrorHas(ctx, CollectionAmbulances) {
		return nil
	}

	record, err := r.mirrorRecord(ctx, CollectionAmbulances, ambulance.AmbulanceID)
	if err != nil {
		return err
	}
	if record == nil {
		return r.upsertJSON(ctx, r.mirror, CollectionAmbulances, ambulance.AmbulanceID, newServerAmbulance(ambulance))
	}

	record["current_status"] = ambulance.CurrentStatus
	record["updatedAt"] = ambulance.LastUpdated.Format(time.RFC3339)
	if ambulance.CurrentLocation != nil {
		record["current_location"] = ambulance.CurrentLocation
	}
	return r.upsertJSON(ctx, r.mirror, CollectionAmbulances, ambulance.AmbulanceID, record)
}

// SaveResponse сохраняет ответ в основной кеш; повторная запись заменяет прежнюю
func (r *DispatchRepository) SaveResponse(ctx context.Context, response *models.EmergencyResponse) error {
	return r.upsertJSON(ctx, r.primary, CollectionResponses, response.RequestID, response)
}

// MirrorResponse отражает ответ во вторичное представление и переводит вызов в статус Assigned
func (r *DispatchRepository) MirrorResponse(ctx context.Context, response *models.EmergencyResponse) error {
	if !r.mirrorHas(ctx, CollectionResponses) {
		return nil
	}

	record, err := r.mirrorRecord(ctx, CollectionResponses, response.RequestID)
	if err != nil {
		return err
	}
	if record == nil {
		record = map[string]any{
			"id":        mirrorResponseID(response.RequestID),
			"createdAt": response.Timestamp.Format(time.RFC3339),
		}
	}
	for k, v := range responseMirrorFields(response) {
		record[k] = v
	}
	if err := r.upsertJSON(ctx, r.mirror, CollectionResponses, response.RequestID, record); err != nil {
		return err
	}

	return r.updateRequestStatus(ctx, response.RequestID, models.RequestAssigned, response.Timestamp)
}

// updateRequestStatus меняет статус вызова, если вызовы хранятся во вторичном представлении
func (r *DispatchRepository) updateRequestStatus(ctx context.Context, requestID, status string, now time.Time) error {
	if !r.mirrorHas(ctx, CollectionEmergencies) {
		return nil
	}
	record, err := r.mirrorRecord(ctx, CollectionEmergencies, requestID)
	if err != nil || record == nil {
		return err
	}
	record["status"] = status
	record["updatedAt"] = now.Format(time.RFC3339)
	return r.upsertJSON(ctx, r.mirror, CollectionEmergencies, requestID, record)
}

// GetResponse возвращает сохранённый ответ по идентификатору вызова
func (r *DispatchRepository) GetResponse(ctx context.Context, requestID string) (*models.EmergencyResponse, error) {
	raw, err := r.primary.Get(ctx, CollectionResponses, requestID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, err
		}
		r.logger.WithError(err).WithField("request_id", requestID).Warn("Failed to read emergency response")
		return nil, fmt.Errorf("emergency response %s: %w", requestID, models.ErrRecordNotFound)
	}
	var response models.EmergencyResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("emergency response %s is malformed: %w", requestID, models.ErrRecordNotFound)
	}
	return &response, nil
}

func (r *DispatchRepository) mirrorHas(ctx context.Context, collection string) bool {
	if r.mirror == nil {
		return false
	}
	ok, err := r.mirror.Exists(ctx, collection)
	if err != nil {
		r.logger.WithError(err).WithField("collection", collection).Warn("Failed to check mirror collection")
		return false
	}
	return ok
}

// mirrorRecord читает запись вторичного представления как map, чтобы не терять чужие поля.
// Отсутствие записи - (nil, nil).
func (r *DispatchRepository) mirrorRecord(ctx context.Context, collection, id string) (map[string]any, error) {
	raw, err := r.mirror.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) || errors.Is(err, models.ErrStoreReadCorrupted) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: read mirror %s/%s: %v: %w", collection, id, err, models.ErrStoreWriteFailed)
	}
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil || record == nil {
		return nil, nil
	}
	return record, nil
}

func (r *DispatchRepository) upsertJSON(ctx context.Context, store RecordStore, collection, id string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("repository: marshal %s/%s: %v: %w", collection, id, err, models.ErrStoreWriteFailed)
	}
	if err := store.Upsert(ctx, collection, id, payload); err != nil {
		if errors.Is(err, models.ErrStoreWriteFailed) {
			return fmt.Errorf("repository: %w", err)
		}
		return fmt.Errorf("repository: upsert %s/%s: %v: %w", collection, id, err, models.ErrStoreWriteFailed)
	}
	return nil
}
