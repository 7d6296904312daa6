package models

import "time"

// Статусы вызова
const (
	RequestRequested = "Requested"
	RequestAssigned  = "Assigned"
	RequestCompleted = "Completed"
	RequestCancelled = "Cancelled"
)

// EmergencyRequest - входящий экстренный вызов
type EmergencyRequest struct {
	RequestID     string    `json:"request_id"`
	UserID        string    `json:"user_id"`
	UserLocation  Location  `json:"user_location"`
	EmergencyType string    `json:"emergency_type"`
	Timestamp     time.Time `json:"timestamp"`
	Status        string    `json:"status"`
}

// EmergencyResponse - назначение больницы и машины на вызов.
// HospitalName - снимок на момент назначения, а не ссылка.
type EmergencyResponse struct {
	RequestID            string    `json:"request_id"`
	HospitalID           string    `json:"hospital_id"`
	HospitalName         string    `json:"hospital_name"`
	AmbulanceID          string    `json:"ambulance_id"`
	EstimatedArrivalTime int       `json:"estimated_arrival_time"`
	Distance             float64   `json:"distance"`
	Status               string    `json:"status"`
	Timestamp            time.Time `json:"timestamp"`
	BlockchainTxID       string    `json:"blockchain_tx_id"`
}

// Selection - результат подбора: ближайшая больница со свободной машиной
type Selection struct {
	Hospital  *Hospital
	Ambulance *Ambulance
	Distance  float64
}
