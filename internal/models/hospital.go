package models

import "time"

// HospitalLocation - координаты больницы вместе с адресом
type HospitalLocation struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

// Point возвращает координаты больницы без адресной части
func (l HospitalLocation) Point() Location {
	return Location{Latitude: l.Latitude, Longitude: l.Longitude}
}

// ContactInfo - контакты больницы
type ContactInfo struct {
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Website        string `json:"website"`
	EmergencyPhone string `json:"emergency_phone"`
}

// Hospital - зарегистрированная больница. Ядро диспетчеризации её только читает.
type Hospital struct {
	HospitalID         string           `json:"hospital_id"`
	Name               string           `json:"name"`
	Location           HospitalLocation `json:"location"`
	Contact            ContactInfo      `json:"contact"`
	Services           []string         `json:"services"`
	EmergencyCapacity  int              `json:"emergency_capacity"`
	VerificationStatus string           `json:"verification_status"`
	Timestamp          time.Time        `json:"timestamp"`
	AdminID            *string          `json:"admin_id,omitempty"`
}

// HospitalWithDistance - больница и расстояние до неё в километрах
type HospitalWithDistance struct {
	Hospital *Hospital `json:"hospital"`
	Distance float64   `json:"distance"`
}
