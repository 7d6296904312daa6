package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

const (
	dispatchQueueKey = "dispatch_events"
	// AssignedSubject - тема NATS для событий назначения машины
	AssignedSubject = "dispatch.assigned"
)

// AssignmentEvent - событие о назначении машины на вызов
type AssignmentEvent struct {
	RequestID            string    `json:"request_id"`
	HospitalID           string    `json:"hospital_id"`
	HospitalName         string    `json:"hospital_name"`
	AmbulanceID          string    `json:"ambulance_id"`
	EstimatedArrivalTime int       `json:"estimated_arrival_time"`
	Distance             float64   `json:"distance"`
	BlockchainTxID       string    `json:"blockchain_tx_id"`
	Timestamp            time.Time `json:"timestamp"`
}

// NewAssignmentEvent собирает событие из подтверждённого ответа
func NewAssignmentEvent(r *models.EmergencyResponse) AssignmentEvent {
	return AssignmentEvent{
		RequestID:            r.RequestID,
		HospitalID:           r.HospitalID,
		HospitalName:         r.HospitalName,
		AmbulanceID:          r.AmbulanceID,
		EstimatedArrivalTime: r.EstimatedArrivalTime,
		Distance:             r.Distance,
		BlockchainTxID:       r.BlockchainTxID,
		Timestamp:            r.Timestamp,
	}
}

// Publisher - интерфейс для публикации событий назначения
type Publisher interface {
	Publish(ctx context.Context, event AssignmentEvent) error
}

// RedisPublisher кладёт события в очередь Redis, откуда их забирает WebhookWorker
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish добавляет событие в левую часть очереди
func (p *RedisPublisher) Publish(ctx context.Context, event AssignmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal assignment event: %w", err)
	}
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish assignment event to Redis: %w", err)
	}
	return nil
}

// MultiPublisher рассылает событие всем издателям и собирает их ошибки
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(ctx context.Context, event AssignmentEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NopPublisher ничего не публикует; используется, когда уведомления не настроены
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, AssignmentEvent) error { return nil }
