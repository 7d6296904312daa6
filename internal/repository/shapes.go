package repository

import (
	"time"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

// storedHospital - запись основного кеша: больница и блок реестра, где она подтверждена
type storedHospital struct {
	Hospital  models.Hospital `json:"hospital"`
	BlockID   string          `json:"block_id"`
	Timestamp time.Time       `json:"timestamp"`
}

// storedAmbulance - запись основного кеша для машины скорой помощи
type storedAmbulance struct {
	Ambulance models.Ambulance `json:"ambulance"`
	BlockID   string           `json:"block_id"`
	Timestamp time.Time        `json:"timestamp"`
}

// serverHospital - форма больницы во вторичном представлении
type serverHospital struct {
	ID                 string                  `json:"id"`
	Name               string                  `json:"name"`
	Location           models.HospitalLocation `json:"location"`
	Contact            models.ContactInfo      `json:"contact"`
	Services           []string                `json:"services"`
	EmergencyCapacity  int                     `json:"emergency_capacity"`
	VerificationStatus string                  `json:"verification_status"`
	CreatedAt          time.Time               `json:"createdAt"`
	AdminID            *string                 `json:"adminId,omitempty"`
}

func (h serverHospital) toModel() *models.Hospital {
	status := h.VerificationStatus
	if status == "" {
		status = "pending"
	}
	return &models.Hospital{
		HospitalID:         h.ID,
		Name:               h.Name,
		Location:           h.Location,
		Contact:            h.Contact,
		Services:           h.Services,
		EmergencyCapacity:  h.EmergencyCapacity,
		VerificationStatus: status,
		Timestamp:          h.CreatedAt,
		AdminID:            h.AdminID,
	}
}

// serverAmbulance - форма машины во вторичном представлении
type serverAmbulance struct {
	ID                 string           `json:"id"`
	HospitalID         string           `json:"hospital_id"`
	RegistrationNumber string           `json:"registration_number"`
	VehicleType        string           `json:"vehicle_type"`
	Capacity           int              `json:"capacity"`
	Equipment          []string         `json:"equipment"`
	CurrentStatus      string           `json:"current_status"`
	CurrentLocation    *models.Location `json:"current_location"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func newServerAmbulance(a *models.Ambulance) serverAmbulance {
	return serverAmbulance{
		ID:                 a.AmbulanceID,
		HospitalID:         a.HospitalID,
		RegistrationNumber: a.RegistrationNumber,
		VehicleType:        a.VehicleType,
		Capacity:           a.Capacity,
		Equipment:          a.Equipment,
		CurrentStatus:      a.CurrentStatus,
		CurrentLocation:    a.CurrentLocation,
		CreatedAt:          a.LastUpdated,
		UpdatedAt:          a.LastUpdated,
	}
}

func (a serverAmbulance) toModel() *models.Ambulance {
	status := a.CurrentStatus
	if status == "" {
		status = models.AmbulanceAvailable
	}
	return &models.Ambulance{
		AmbulanceID:        a.ID,
		HospitalID:         a.HospitalID,
		RegistrationNumber: a.RegistrationNumber,
		VehicleType:        a.VehicleType,
		Capacity:           a.Capacity,
		Equipment:          a.Equipment,
		CurrentStatus:      status,
		CurrentLocation:    a.CurrentLocation,
		LastUpdated:        a.UpdatedAt,
	}
}

// blockchainStatusConfirmed - ответ попадает во вторичное представление только после записи в реестр
const blockchainStatusConfirmed = "Confirmed"

// responseMirrorFields - поля ответа, которые переносятся во вторичное представление
func responseMirrorFields(r *models.EmergencyResponse) map[string]any {
	return map[string]any{
		"request_id":              r.RequestID,
		"hospital_id":             r.HospitalID,
		"hospital_name":           r.HospitalName,
		"ambulance_id":            r.AmbulanceID,
		"estimated_arrival_time":  r.EstimatedArrivalTime,
		"distance":                r.Distance,
		"status":                  r.Status,
		"blockchainTransactionId": r.BlockchainTxID,
		"blockchainStatus":        blockchainStatusConfirmed,
		"updatedAt":               r.Timestamp.Format(time.RFC3339),
	}
}

func mirrorResponseID(requestID string) string {
	return "resp_" + requestID
}
