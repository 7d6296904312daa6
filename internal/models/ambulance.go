package models

import "time"

// Статусы скорой помощи
const (
	AmbulanceAvailable   = "Available"
	AmbulanceDispatched  = "Dispatched"
	AmbulanceMaintenance = "Maintenance"
)

// Ambulance - машина скорой помощи, приписанная к больнице
type Ambulance struct {
	AmbulanceID        string    `json:"ambulance_id"`
	HospitalID         string    `json:"hospital_id"`
	RegistrationNumber string    `json:"registration_number"`
	VehicleType        string    `json:"vehicle_type"`
	Capacity           int       `json:"capacity"`
	Equipment          []string  `json:"equipment"`
	CurrentStatus      string    `json:"current_status"`
	CurrentLocation    *Location `json:"current_location"`
	LastUpdated        time.Time `json:"last_updated"`
}

// IsAvailable сообщает, можно ли назначить машину на вызов
func (a *Ambulance) IsAvailable() bool {
	return a.CurrentStatus == AmbulanceAvailable
}

// SetStatus меняет статус и время обновления вместе
func (a *Ambulance) SetStatus(status string, now time.Time) {
	a.CurrentStatus = status
	a.LastUpdated = now
}
