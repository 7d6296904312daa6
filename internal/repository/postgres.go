package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

var _ RecordStore = (*PostgresStore)(nil)

// PostgresStore хранит все коллекции в таблице records (см. migrations)
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// List возвращает записи коллекции в порядке первой вставки
func (r *PostgresStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	query := `
		SELECT payload
		FROM records
		WHERE collection = $1
		ORDER BY seq;
	`
	rows, err := r.db.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	defer rows.Close()

	records := make([]json.RawMessage, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %v: %w", collection, err, models.ErrStoreReadCorrupted)
		}
		records = append(records, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}

func (r *PostgresStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	query := `
		SELECT payload
		FROM records
		WHERE collection = $1 AND id = $2;
	`
	var payload []byte
	err := r.db.QueryRow(ctx, query, collection, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s/%s: %w", collection, id, models.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	return json.RawMessage(payload), nil
}

// Upsert вставляет запись или заменяет payload существующей; seq при замене не меняется
func (r *PostgresStore) Upsert(ctx context.Context, collection, id string, payload json.RawMessage) error {
	if !json.Valid(payload) {
		return fmt.Errorf("%s/%s: invalid json payload: %w", collection, id, models.ErrStoreWriteFailed)
	}
	query := `
		INSERT INTO records (collection, id, payload)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, collection, id, string(payload)); err != nil {
		return fmt.Errorf("failed to upsert %s/%s: %v: %w", collection, id, err, models.ErrStoreWriteFailed)
	}
	return nil
}

func (r *PostgresStore) Exists(ctx context.Context, collection string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM records WHERE collection = $1);`
	var exists bool
	if err := r.db.QueryRow(ctx, query, collection).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", collection, err)
	}
	return exists, nil
}
