package repository

import (
	"context"
	"encoding/json"
)

// Коллекции, с которыми работает диспетчеризация
const (
	CollectionHospitals   = "hospitals"
	CollectionAmbulances  = "ambulances"
	CollectionResponses   = "emergency_responses"
	CollectionEmergencies = "emergencies"
)

// RecordStore - хранилище JSON-записей, разложенных по коллекциям.
// Порядок List совпадает с порядком первой вставки записей.
type RecordStore interface {
	// List возвращает все записи коллекции. Отсутствующая коллекция - пустой список.
	List(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Get возвращает запись по ключу или models.ErrRecordNotFound
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	// Upsert заменяет запись с тем же ключом или добавляет новую в конец
	Upsert(ctx context.Context, collection, id string, payload json.RawMessage) error
	// Exists сообщает, заведена ли коллекция в хранилище
	Exists(ctx context.Context, collection string) (bool, error)
}
