package v1

import (
	"encoding/json"
	"time"
)

// LocationRequest DTO координат
// @Description DTO координат
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// DispatchRequest DTO экстренного вызова
// @Description DTO экстренного вызова. request_id генерируется, если не задан.
type DispatchRequest struct {
	RequestID     string          `json:"request_id" validate:"omitempty,max=128"`
	UserID        string          `json:"user_id" validate:"required,max=128"`
	UserLocation  LocationRequest `json:"user_location"`
	EmergencyType string          `json:"emergency_type" validate:"required,max=64"`
	Timestamp     *time.Time      `json:"timestamp,omitempty"`
}

// HospitalLocationRequest DTO адреса и координат больницы
// @Description DTO адреса и координат больницы
type HospitalLocationRequest struct {
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Longitude  *float64 `json:"longitude" validate:"required,longitude"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	Country    string   `json:"country"`
	PostalCode string   `json:"postal_code"`
}

// ContactRequest DTO контактов больницы
// @Description DTO контактов больницы
type ContactRequest struct {
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	Website        string `json:"website" validate:"omitempty,url"`
	EmergencyPhone string `json:"emergency_phone"`
}

// RegisterHospitalRequest DTO регистрации больницы
// @Description DTO регистрации больницы
type RegisterHospitalRequest struct {
	HospitalID         string                  `json:"hospital_id" validate:"omitempty,max=128"`
	Name               string                  `json:"name" validate:"required,min=2,max=255"`
	Location           HospitalLocationRequest `json:"location"`
	Contact            ContactRequest          `json:"contact"`
	Services           []string                `json:"services"`
	EmergencyCapacity  int                     `json:"emergency_capacity" validate:"gte=0"`
	VerificationStatus string                  `json:"verification_status" validate:"omitempty,max=64"`
	AdminID            *string                 `json:"admin_id,omitempty"`
}

// RegisterAmbulanceRequest DTO регистрации машины скорой помощи
// @Description DTO регистрации машины скорой помощи
type RegisterAmbulanceRequest struct {
	AmbulanceID        string           `json:"ambulance_id" validate:"omitempty,max=128"`
	HospitalID         string           `json:"hospital_id" validate:"required,max=128"`
	RegistrationNumber string           `json:"registration_number" validate:"required,max=64"`
	VehicleType        string           `json:"vehicle_type"`
	Capacity           int              `json:"capacity" validate:"gte=0"`
	Equipment          []string         `json:"equipment"`
	CurrentStatus      string           `json:"current_status" validate:"omitempty,oneof=Available Dispatched Maintenance"`
	CurrentLocation    *LocationRequest `json:"current_location,omitempty"`
}

// RegistrationResponse DTO ответа на регистрацию
// @Description DTO ответа на регистрацию: идентификатор записи и блок реестра
type RegistrationResponse struct {
	ID      string `json:"id"`
	BlockID string `json:"block_id"`
}

// AnchorRequest DTO записи в реестр от другого узла
// @Description DTO записи в реестр от другого узла
type AnchorRequest struct {
	Tag     string          `json:"tag" validate:"required,max=128"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// AnchorResponse DTO ответа на запись в реестр
// @Description DTO ответа на запись в реестр
type AnchorResponse struct {
	AnchorID string `json:"anchor_id"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки; code задан для ошибок подбора
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
