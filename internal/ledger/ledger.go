package ledger

import (
	"encoding/json"
	"errors"
	"time"
)

// Теги записей реестра
const (
	TagEmergencyResponse = "HEALTHCARE_EMERGENCY_RESPONSE"
	TagHospitalRegistry  = "HEALTHCARE_HOSPITAL_REGISTRY"
	TagAmbulanceRegistry = "HEALTHCARE_AMBULANCE_REGISTRY"
)

var (
	// ErrLedgerUnavailable - реестр недоступен или не ответил вовремя
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	// ErrLedgerRejected - реестр отказался принимать запись
	ErrLedgerRejected = errors.New("ledger rejected submission")
	ErrBlockNotFound  = errors.New("block not found")
	// ErrChainBroken - хеш или ссылка на предыдущий блок не сходятся
	ErrChainBroken = errors.New("ledger chain is broken")
)

// Block - подтверждённая запись реестра. Hash служит идентификатором якоря.
type Block struct {
	Index     int             `json:"index"`
	Tag       string          `json:"tag"`
	Payload   json.RawMessage `json:"payload"`
	PrevHash  string          `json:"prev_hash"`
	Timestamp time.Time       `json:"timestamp"`
	Hash      string          `json:"hash"`
}

// SubmitRequest - тело запроса на запись в удалённый узел реестра
type SubmitRequest struct {
	Tag     string          `json:"tag"`
	Payload json.RawMessage `json:"payload"`
}

// SubmitResult - ответ узла реестра на запись
type SubmitResult struct {
	AnchorID string `json:"anchor_id"`
}
